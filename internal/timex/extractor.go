package timex

import "jatimex/internal/tag"

// registryEntry is one category's ordered pattern list within a Parser's
// fixed extraction order: custom (if configured), then abstime, duration,
// reltime, set.
type registryEntry struct {
	category tag.Category
	patterns []*tag.Pattern
}

// extractAll enumerates every non-overlapping match of every pattern, in
// registry order, against processedText. The same character range may
// appear in multiple Extracts; no filtering or deduplication happens here.
func extractAll(entries []registryEntry, processedText string, idx *byteToCharIndex) []tag.Extract {
	var extracts []tag.Extract

	for _, entry := range entries {
		for _, pattern := range entry.patterns {
			locs := pattern.Regexp.FindAllStringSubmatchIndex(processedText, -1)
			for _, loc := range locs {
				extracts = append(extracts, tag.Extract{
					Category: entry.category,
					Match:    buildMatch(processedText, loc, idx),
					Pattern:  pattern,
				})
			}
		}
	}

	return extracts
}

// buildMatch converts a regexp submatch-index slice (byte offsets, -1 for
// unmatched groups) into a character-offset Match with its capture groups
// resolved to strings.
func buildMatch(text string, loc []int, idx *byteToCharIndex) tag.Match {
	groups := make([]string, len(loc)/2)

	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}

		groups[i/2] = text[loc[i]:loc[i+1]]
	}

	return tag.Match{
		Start:  idx.char(loc[0]),
		End:    idx.char(loc[1]),
		Text:   groups[0],
		Groups: groups,
	}
}
