package relay

import (
	"fmt"
	"strings"
)

// MaxReplyLength is the hard ceiling, in characters, for a composed reply.
const MaxReplyLength = 5000

// ComposeReply assembles sender attribution and the successful translations
// into a single bounded-length message. The second return value is false when
// no translation succeeded, in which case nothing must be delivered.
//
// Translation lines keep the order of the given outcomes. Replies exceeding
// MaxReplyLength characters are cut to 4997 characters with "..." appended;
// the cut is a blunt character truncation, not line-aware.
func ComposeReply(senderName, original string, outcomes []Outcome) (string, bool) {
	var lines []string
	for _, o := range outcomes {
		if !o.OK {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(o.Lang), o.Text))
	}
	if len(lines) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Original message from %s:\n%s\n\n", senderName, original))
	sb.WriteString("--- Translations ---\n")
	sb.WriteString(strings.Join(lines, "\n"))

	return truncate(sb.String(), MaxReplyLength), true
}

// truncate cuts s to at most max characters, replacing the tail with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
