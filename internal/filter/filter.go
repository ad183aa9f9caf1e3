// Package filter provides the default extract-rejection predicates applied
// between candidate extraction and coverage-based deduplication.
package filter

import (
	"regexp"
	"unicode"

	"jatimex/internal/tag"
)

// Filter is a predicate over a candidate Extract: true means "discard".
// Filters are collaborators of the core parser, applied in registration
// order with no short-circuit priority beyond that order.
type Filter interface {
	Filter(e tag.Extract, processedText string) bool
}

// defaultNames pairs each default filter with the config-facing name used
// by extractor.disabled_filters to turn it off, in registration order.
var defaultNames = []struct {
	name   string
	filter Filter
}{
	{"numexp", NumexpFilter{}},
	{"partial_num", PartialNumFilter{}},
	{"decimal", DecimalFilter{}},
}

// Default returns the parser's default filter chain, in registration order.
func Default() []Filter {
	filters := make([]Filter, len(defaultNames))
	for i, d := range defaultNames {
		filters[i] = d.filter
	}

	return filters
}

// DefaultExcept returns the default filter chain with any filter whose
// config-facing name appears in disabled omitted, preserving registration
// order. Unrecognized names are ignored.
func DefaultExcept(disabled []string) []Filter {
	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}

	var filters []Filter

	for _, d := range defaultNames {
		if skip[d.name] {
			continue
		}

		filters = append(filters, d.filter)
	}

	return filters
}

// NumexpFilter rejects a match whose numeric edge directly abuts another
// digit outside the match, e.g. the "234" inside "12345" matching a
// two/three-digit pattern on its own.
type NumexpFilter struct{}

// Filter implements Filter.
func (NumexpFilter) Filter(e tag.Extract, processedText string) bool {
	runes := []rune(processedText)

	if e.Match.Start > 0 && startsWithDigit(e.Match.Text) && isDigitAt(runes, e.Match.Start-1) {
		return true
	}

	if e.Match.End < len(runes) && endsWithDigit(e.Match.Text) && isDigitAt(runes, e.Match.End) {
		return true
	}

	return false
}

// PartialNumFilter rejects a match whose leading numeric component is only
// the tail of a longer number already present immediately before it.
type PartialNumFilter struct{}

// Filter implements Filter.
func (PartialNumFilter) Filter(e tag.Extract, processedText string) bool {
	if !startsWithDigit(e.Match.Text) {
		return false
	}

	runes := []rune(processedText)

	return e.Match.Start > 0 && isDigitAt(runes, e.Match.Start-1)
}

// DecimalFilter rejects bare decimals ("0.5") classified as abstime, which
// would otherwise be mis-parsed as a fragment like "0年5月". DURATION
// matches, which legitimately use decimals (half units), are exempt.
type DecimalFilter struct{}

var decimalPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)

// Filter implements Filter.
func (DecimalFilter) Filter(e tag.Extract, _ string) bool {
	if e.Category != tag.Abstime {
		return false
	}

	return decimalPattern.MatchString(e.Match.Text)
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}

	return false
}

func endsWithDigit(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}

	return unicode.IsDigit(runes[len(runes)-1])
}

func isDigitAt(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return false
	}

	return unicode.IsDigit(runes[i])
}
