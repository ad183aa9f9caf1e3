package timex

import (
	"fmt"
	"sort"
	"time"

	"jatimex/internal/tag"
)

// finalize sorts tags by span start (spanless tags sort to position 0),
// assigns contiguous tid values in that order, and attaches reference if
// configured.
func finalize(tags []*tag.TIMEX, reference *time.Time) []*tag.TIMEX {
	sort.SliceStable(tags, func(i, j int) bool {
		return spanStart(tags[i]) < spanStart(tags[j])
	})

	for i, t := range tags {
		t.TID = fmt.Sprintf("t%d", i)
		if reference != nil {
			t.Reference = reference
		}
	}

	return tags
}

func spanStart(t *tag.TIMEX) int {
	if t.Span == nil {
		return 0
	}

	return t.Span.Start
}
