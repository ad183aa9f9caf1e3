// Package reltime recognizes fixed relative-day/week/month/year phrases
// that carry an implicit offset from the reference date ("一昨日", "翌週",
// "今月") and renders them as DURATION tags expressing that offset, the
// same family ja_timex's ReltimeTagger belongs to.
package reltime

import (
	"regexp"

	"jatimex/internal/tag"
)

// phrase pairs a literal relative expression with the duration value it
// resolves to. Longer/more-specific phrases are listed first so that, at
// equal start, the longer match wins during dedup (e.g. "一昨昨日" over the
// "一昨日"-shaped tail it is not actually built from, avoiding any
// ambiguity with a shorter alternation member).
var phrases = []struct {
	text  string
	value string
}{
	{"一昨昨日", "P3D"},
	{"一昨々日", "P3D"},
	{"一昨年", "P2Y"},
	{"一昨日", "P2D"},
	{"翌週", "P1W"},
	{"翌日", "P1D"},
	{"翌月", "P1M"},
	{"翌年", "P1Y"},
	{"今週", "P0W"},
	{"今月", "P0M"},
	{"今年", "P0Y"},
	{"今日", "P0D"},
}

// Tagger holds the compiled relative-phrase patterns. The zero value is not
// usable; construct with New.
type Tagger struct {
	patterns []*tag.Pattern
}

// New compiles one pattern per fixed phrase, in the priority order phrases
// lists them.
func New() *Tagger {
	t := &Tagger{}

	for _, ph := range phrases {
		ph := ph
		t.patterns = append(t.patterns, &tag.Pattern{
			Name:     "reltime_" + ph.text,
			Category: tag.Reltime,
			Regexp:   regexp.MustCompile(regexp.QuoteMeta(ph.text)),
			Parse: func(m tag.Match, p *tag.Pattern) *tag.TIMEX {
				return &tag.TIMEX{
					Type:    tag.DurationType,
					Value:   ph.value,
					Text:    m.Text,
					Pattern: p,
				}
			},
		})
	}

	return t
}

// Patterns returns the tagger's patterns in registration order.
func (t *Tagger) Patterns() []*tag.Pattern {
	return t.patterns
}
