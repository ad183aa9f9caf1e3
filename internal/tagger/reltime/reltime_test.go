package reltime

import (
	"testing"

	"jatimex/internal/tag"
)

func TestPatterns_ResolveExpectedValues(t *testing.T) {
	tg := New()

	cases := map[string]string{
		"一昨年":  "P2Y",
		"一昨日":  "P2D",
		"一昨昨日": "P3D",
		"一昨々日": "P3D",
		"翌週":   "P1W",
		"翌日":   "P1D",
	}

	for text, want := range cases {
		var found *tag.TIMEX

		for _, p := range tg.Patterns() {
			loc := p.Regexp.FindStringIndex(text)
			if loc == nil || loc[0] != 0 || loc[1] != len(text) {
				continue
			}

			m := tag.Match{Start: 0, End: len([]rune(text)), Text: text, Groups: []string{text}}
			found = p.Parse(m, p)

			break
		}

		if found == nil {
			t.Fatalf("no pattern fully matched %q", text)
		}

		if found.Value != want {
			t.Errorf("%q: Value = %q, want %q", text, found.Value, want)
		}

		if found.Type != tag.DurationType {
			t.Errorf("%q: Type = %q, want DURATION", text, found.Type)
		}
	}
}
