package relay

import (
	"context"

	"golang.org/x/sync/errgroup"

	"babelbot/internal/gemini"
)

// Outcome is the per-language result of one translation attempt.
type Outcome struct {
	Lang string
	Text string
	OK   bool
}

// TranslateAll issues one translation call per target language concurrently
// and waits for all of them to settle. Each call is isolated: a failure
// (error or empty result) yields an Outcome with OK=false for that language
// and never cancels or affects the others. No call is retried here.
//
// Exactly one Outcome is returned per requested target, in input order, so
// callers can distinguish "no targets requested" from "all targets failed".
// Callers must short-circuit on an empty target set instead of calling this.
func TranslateAll(ctx context.Context, translator gemini.Translator, text string, targets []string) []Outcome {
	outcomes := make([]Outcome, len(targets))

	var g errgroup.Group
	for i, lang := range targets {
		outcomes[i].Lang = lang
		g.Go(func() error {
			translated, err := translator.Translate(ctx, text, lang)
			if err != nil || translated == "" {
				return nil
			}
			outcomes[i].Text = translated
			outcomes[i].OK = true
			return nil
		})
	}

	// Join-all barrier; goroutines never return errors.
	_ = g.Wait()
	return outcomes
}
