package stats

import (
	"testing"

	"github.com/verte-zerg/wordrush/internal/model"
)

func TestCharTableLinesAlignsColumns(t *testing.T) {
	rows := []charRow{
		newCharRow(model.CharAggregate{Char: "e", Correct: 1240, Incorrect: 31}),
		newCharRow(model.CharAggregate{Char: " ", Correct: 2, Incorrect: 23}),
	}
	lines := charTableLines(rows)
	want := []string{
		"Char    Accuracy Correct Missed",
		"e         97.56%    1240     31",
		"<space>    8.00%       2     23",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestCharTableLinesWideRunes(t *testing.T) {
	lines := charTableLines([]charRow{
		newCharRow(model.CharAggregate{Char: "語", Correct: 1}),
	})
	if lines[1] != "語    100.00%       1      0" {
		t.Fatalf("expected wide rune padded by display width, got %q", lines[1])
	}
}

func TestCharLabelNamesWhitespace(t *testing.T) {
	for char, want := range map[string]string{" ": "<space>", "\t": "<tab>", "é": "é"} {
		if got := charLabel(char); got != want {
			t.Fatalf("charLabel(%q) = %q, want %q", char, got, want)
		}
	}
}
