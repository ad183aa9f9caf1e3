package timex

import (
	"regexp"

	"jatimex/internal/tag"
)

// abbrevRangeTokens is the broader set of separators recognized when
// recovering an elided unit suffix, wider than rangeTokens because plain
// commas and "、" also introduce an abbreviation (but never a true range).
var abbrevRangeTokens = []string{"〜", "~", "-", "から", ",", "、"}

var leadingNumericSplit = regexp.MustCompile(`^([0-9.]+)(.+)$`)

// expandAbbreviations recovers constructs like "1〜2日" (the leading "1"
// lacks its unit, "日", which the second tag carries) by re-running the
// second tag's own Pattern against a synthesized "numeric_run + unit_suffix"
// string. Must run after annotateRanges: that stage must not mistake an
// elided-suffix pair for a true range. Returns the original tags plus any
// newly synthesized ones, unsorted — the caller re-sorts during
// finalization.
func expandAbbreviations(tags []*tag.TIMEX, runes []rune) []*tag.TIMEX {
	var additional []*tag.TIMEX

	for _, t := range tags {
		if t.Span == nil || t.Pattern == nil {
			continue
		}

		token := detectRangeToken(runes, t.Span.Start, abbrevRangeTokens)
		if token == "" {
			continue
		}

		possibleEnd := t.Span.Start - len([]rune(token)) - 1
		if possibleEnd < 0 {
			continue
		}

		runStart := trailingNumericRunStart(runes, possibleEnd)
		if runStart > possibleEnd {
			continue
		}

		numericRun := string(runes[runStart : possibleEnd+1])

		m := leadingNumericSplit.FindStringSubmatch(t.Text)
		if m == nil {
			continue
		}

		suffix := m[2]
		candidate := numericRun + suffix

		loc := t.Pattern.Regexp.FindStringIndex(candidate)
		if loc == nil || loc[0] != 0 || loc[1] != len(candidate) {
			continue
		}

		groupLoc := t.Pattern.Regexp.FindStringSubmatchIndex(candidate)
		newMatch := buildMatch(candidate, groupLoc, newByteToCharIndex(candidate))

		abbrevTag := t.Pattern.Parse(newMatch, t.Pattern)
		// The original text/span correspond to the bare numeric run; the
		// elided suffix is never re-attached to Text.
		abbrevTag.Text = numericRun
		abbrevTag.Span = &tag.Span{Start: runStart, End: possibleEnd + 1}

		additional = append(additional, abbrevTag)
	}

	return append(tags, additional...)
}

// trailingNumericRunStart scans backward from charIndex (inclusive) over
// digit/decimal/colon/slash characters and returns the start index of the
// run. If runes[charIndex] itself isn't part of such a run, it returns
// charIndex+1 (an empty, not-found run).
func trailingNumericRunStart(runes []rune, charIndex int) int {
	i := charIndex
	for i >= 0 && isNumericRunRune(runes[i]) {
		i--
	}

	return i + 1
}

func isNumericRunRune(r rune) bool {
	switch r {
	case '.', ':', '：', '/':
		return true
	default:
		return r >= '0' && r <= '9'
	}
}
