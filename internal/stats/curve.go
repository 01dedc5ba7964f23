package stats

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/wordrush/internal/model"
)

const (
	curveLabel          = "Score "
	minCurveWidth       = 10
	terminalWidthBackup = 80
)

// RenderScoreCurve prints a moving-average sparkline of session scores,
// keeping the most recent sessions that fit in totalWidth columns.
func RenderScoreCurve(w io.Writer, sessions []model.SessionAggregate, window, totalWidth int) error {
	if len(sessions) == 0 {
		return nil
	}
	scores := make([]float64, len(sessions))
	for i, s := range sessions {
		scores[i] = float64(s.Score)
	}
	scores = MovingAverage(scores, window)

	width := CurveWidthFor(totalWidth)
	if len(scores) > width {
		scores = scores[len(scores)-width:]
	}
	lo, hi := scores[0], scores[0]
	for _, v := range scores {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	lines := []string{
		fmt.Sprintf("Score Curve (window %d)", max(window, 1)),
		curveLabel + Sparkline(scores),
		fmt.Sprintf("min %.2f  max %.2f", lo, hi),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// CurveWidthFor returns the sparkline width for a terminal of totalWidth columns.
func CurveWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = TerminalWidth()
	}
	width := totalWidth - len(curveLabel)
	if width < minCurveWidth {
		width = minCurveWidth
	}
	return width
}

// TerminalWidth reports the stdout width, falling back to 80 columns.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
