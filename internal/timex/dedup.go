package timex

import (
	"sort"

	"jatimex/internal/tag"
)

// dedupe drops Extracts that overlap a character range already claimed by a
// higher-priority Extract. Priority is: earlier start wins; for equal
// starts, the longer span wins; remaining ties break on Category in plain
// ascending string order (abstime < custom < duration < reltime < set).
// Matches original_source/ja_timex/timex.py's
// `sorted(extracts, key=lambda x: (start, -len, type_name))`, whose tuple
// sort is ascending on every field — the winner of a tie is simply whichever
// Extract sorts first and claims the coverage bitmap before the other is
// considered.
func dedupe(extracts []tag.Extract, charLen int) map[tag.Category][]tag.Extract {
	ordered := make([]tag.Extract, len(extracts))
	copy(ordered, extracts)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Match.Start != b.Match.Start {
			return a.Match.Start < b.Match.Start
		}

		lenA, lenB := a.Match.End-a.Match.Start, b.Match.End-b.Match.Start
		if lenA != lenB {
			return lenA > lenB
		}

		return a.Category < b.Category
	})

	covered := make([]bool, charLen)
	result := make(map[tag.Category][]tag.Extract)

	for _, e := range ordered {
		if anyCovered(covered, e.Match.Start, e.Match.End) {
			continue
		}

		for i := e.Match.Start; i < e.Match.End; i++ {
			covered[i] = true
		}

		result[e.Category] = append(result[e.Category], e)
	}

	return result
}

func anyCovered(covered []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return true
		}
	}

	return false
}
