package relay_test

import (
	"testing"

	"babelbot/internal/relay"
)

const testMention = "@TranslatorBot"

func TestParseGroupCommand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected relay.Command
	}{
		{
			name:     "valid command",
			text:     "@TranslatorBot language French",
			expected: relay.Command{Action: relay.CommandSet, Lang: "french"},
		},
		{
			name:     "case-insensitive mention and keyword",
			text:     "@translatorbot LANGUAGE Thai",
			expected: relay.Command{Action: relay.CommandSet, Lang: "thai"},
		},
		{
			name:     "multi-word tag joined with single spaces",
			text:     "@TranslatorBot language   Brazilian   Portuguese",
			expected: relay.Command{Action: relay.CommandSet, Lang: "brazilian portuguese"},
		},
		{
			name:     "missing tag",
			text:     "@TranslatorBot language",
			expected: relay.Command{Action: relay.CommandSpecify},
		},
		{
			name:     "mention without keyword",
			text:     "@TranslatorBot hello there",
			expected: relay.Command{Action: relay.CommandUsage},
		},
		{
			name:     "bare mention",
			text:     "@TranslatorBot",
			expected: relay.Command{Action: relay.CommandUsage},
		},
		{
			name:     "plain message is not a command",
			text:     "Hello everyone",
			expected: relay.Command{Action: relay.CommandNone},
		},
		{
			name:     "mention mid-sentence is not a command",
			text:     "I was talking to @TranslatorBot language yesterday",
			expected: relay.Command{Action: relay.CommandNone},
		},
		{
			name:     "empty text",
			text:     "",
			expected: relay.Command{Action: relay.CommandNone},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := relay.ParseGroupCommand(tc.text, testMention)
			if got != tc.expected {
				t.Errorf("ParseGroupCommand(%q) = %+v, want %+v", tc.text, got, tc.expected)
			}
		})
	}
}

func TestParseDirectCommand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected relay.Command
	}{
		{
			name:     "valid command",
			text:     "language ja",
			expected: relay.Command{Action: relay.CommandSet, Lang: "ja"},
		},
		{
			name:     "case-insensitive keyword",
			text:     "Language English",
			expected: relay.Command{Action: relay.CommandSet, Lang: "english"},
		},
		{
			name:     "missing tag",
			text:     "language",
			expected: relay.Command{Action: relay.CommandSpecify},
		},
		{
			name:     "keyword with trailing whitespace only",
			text:     "language   ",
			expected: relay.Command{Action: relay.CommandSpecify},
		},
		{
			name:     "plain message is not a command",
			text:     "what languages do you speak?",
			expected: relay.Command{Action: relay.CommandNone},
		},
		{
			name:     "empty text",
			text:     "",
			expected: relay.Command{Action: relay.CommandNone},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := relay.ParseDirectCommand(tc.text)
			if got != tc.expected {
				t.Errorf("ParseDirectCommand(%q) = %+v, want %+v", tc.text, got, tc.expected)
			}
		})
	}
}
