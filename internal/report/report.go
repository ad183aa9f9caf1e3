// Package report renders extracted TIMEX tags as a east-asian-width-aware
// table and signs/verifies a serialized result bundle, adapted from the
// teacher's markdown table formatter and document-metadata signer.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"jatimex/internal/tag"
	"jatimex/pkg/metadata"
	"jatimex/pkg/utils"
)

var tableHeader = []string{"tid", "type", "value", "text", "mod", "quant", "range"}

// RenderTable formats tags as a markdown table, column widths computed from
// display width rather than rune count so that wide (east-asian) glyphs in
// the "text" column don't throw off alignment.
func RenderTable(tags []*tag.TIMEX) string {
	rows := make([][]string, 0, len(tags)+2)
	rows = append(rows, tableHeader)

	sep := make([]string, len(tableHeader))
	for i := range sep {
		sep[i] = "---"
	}
	rows = append(rows, sep)

	strs := utils.NewStringHelper()

	for _, t := range tags {
		rows = append(rows, []string{
			t.TID,
			string(t.Type),
			t.Value,
			strs.TrimWhitespace(t.Text),
			string(t.Mod),
			string(t.Quant),
			rangeLabel(t),
		})
	}

	return renderAligned(rows)
}

func rangeLabel(t *tag.TIMEX) string {
	switch {
	case t.RangeStart:
		return "start"
	case t.RangeEnd:
		return "end"
	default:
		return ""
	}
}

// renderAligned pads every cell in rows to its column's max display width
// (row index 1, the separator, is reconstructed from dashes instead of
// padded content).
func renderAligned(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	colCount := len(rows[0])

	widths := make([]int, colCount)
	for i, row := range rows {
		if i == 1 {
			continue
		}

		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var lines []string

	for i, row := range rows {
		var sb strings.Builder

		sb.WriteString("|")

		for c := 0; c < colCount; c++ {
			sb.WriteString(" ")

			if i == 1 {
				sb.WriteString(strings.Repeat("-", widths[c]))
			} else {
				cell := row[c]
				sb.WriteString(cell)
				if pad := widths[c] - runewidth.StringWidth(cell); pad > 0 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
			}

			sb.WriteString(" |")
		}

		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

// Sign appends a trailing metadata block (hash + timestamp) to a rendered
// report body, the way the teacher's formatter resigns a document after
// reflowing its tables.
func Sign(reportBody string) string {
	return metadata.Sign(reportBody, true)
}

// Verify reports whether a previously signed report body's hash still
// matches its content.
func Verify(signedReport string) (bool, error) {
	return metadata.Verify(signedReport)
}
