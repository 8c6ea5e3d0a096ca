package relay

import "sort"

// ResolveTargets computes the distinct set of languages a message from
// senderID must be translated into, given the conversation's preference
// mapping.
//
// Every declared preference is included except the sender's own language,
// compared case-insensitively. When the sender has no preference set, nothing
// can be safely excluded, so every declared preference is targeted; the
// resulting over-inclusion is intentional.
//
// The result is sorted lexicographically so downstream ordering is
// reproducible. An empty result is a common, valid outcome.
func ResolveTargets(prefs map[string]string, senderID string) []string {
	senderLang := NormalizeTag(prefs[senderID])

	set := make(map[string]struct{}, len(prefs))
	for _, lang := range prefs {
		tag := NormalizeTag(lang)
		if tag == "" {
			continue
		}
		if senderLang != "" && tag == senderLang {
			continue
		}
		set[tag] = struct{}{}
	}

	targets := make([]string, 0, len(set))
	for tag := range set {
		targets = append(targets, tag)
	}
	sort.Strings(targets)
	return targets
}
