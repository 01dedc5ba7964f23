package stats

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrush/internal/model"
)

var charTableHeader = charRow{"Char", "Accuracy", "Correct", "Missed"}

// charRow is one line of the per-character table. The label column is
// left-aligned, the numeric columns right-aligned.
type charRow [4]string

func newCharRow(agg model.CharAggregate) charRow {
	return charRow{
		charLabel(agg.Char),
		fmt.Sprintf("%.2f%%", accuracy(agg)*100),
		fmt.Sprintf("%d", agg.Correct),
		fmt.Sprintf("%d", agg.Incorrect),
	}
}

func charLabel(char string) string {
	switch char {
	case " ":
		return "<space>"
	case "\t":
		return "<tab>"
	}
	return char
}

// charTableLines lays out the header and rows using terminal cell widths.
func charTableLines(rows []charRow) []string {
	var widths [4]int
	for _, row := range append([]charRow{charTableHeader}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, charTableHeader.format(widths))
	for _, row := range rows {
		lines = append(lines, row.format(widths))
	}
	return lines
}

func (r charRow) format(widths [4]int) string {
	cells := make([]string, len(r))
	cells[0] = runewidth.FillRight(r[0], widths[0])
	for i := 1; i < len(r); i++ {
		cells[i] = runewidth.FillLeft(r[i], widths[i])
	}
	return strings.Join(cells, " ")
}
