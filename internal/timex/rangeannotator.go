package timex

import "jatimex/internal/tag"

// rangeTokens are the range-expression tokens recognized by the range
// annotator, longest/most-specific first so that a compound form like
// "から翌" is matched in preference to the bare "から" it contains as a
// substring of a different suffix position.
var rangeTokens = []string{"から翌", "から同", "から", "〜", "~", "-", "ー"}

// annotateRanges marks adjacent "X <range-token> Y" pairs of the same Type
// by setting X.RangeStart and Y.RangeEnd. DURATION tags are never range
// endpoints. Mutates the tags in place.
func annotateRanges(tags []*tag.TIMEX, runes []rune) {
	index2tag := buildCharOwnerIndex(tags)

	for _, t := range tags {
		if t.Span == nil || t.Type == tag.DurationType {
			continue
		}

		token := detectRangeToken(runes, t.Span.Start, rangeTokens)
		if token == "" {
			continue
		}

		predEnd := t.Span.Start - len([]rune(token)) - 1

		predIdx, ok := index2tag[predEnd]
		if !ok {
			continue
		}

		pred := tags[predIdx]
		if pred.Type == t.Type {
			pred.RangeStart = true
			t.RangeEnd = true
		}
	}
}

// buildCharOwnerIndex maps each character offset covered by a spanned tag to
// that tag's index in tags.
func buildCharOwnerIndex(tags []*tag.TIMEX) map[int]int {
	owner := make(map[int]int)

	for i, t := range tags {
		if t.Span == nil {
			continue
		}

		for c := t.Span.Start; c < t.Span.End; c++ {
			owner[c] = i
		}
	}

	return owner
}

// detectRangeToken reports whether the text immediately preceding charStart
// ends with one of tokens, returning the matched token (the first, i.e. most
// specific, match in tokens' order).
func detectRangeToken(runes []rune, charStart int, tokens []string) string {
	for _, tok := range tokens {
		tokRunes := []rune(tok)
		n := len(tokRunes)

		if charStart-n < 0 {
			continue
		}

		if runesEqual(runes[charStart-n:charStart], tokRunes) {
			return tok
		}
	}

	return ""
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
