// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/wordrush/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes words per minute and keystroke accuracy for a session.
func SessionMetrics(score, keystrokes, misses int, durationMs int64) (wpm, accuracy float64) {
	if keystrokes > 0 {
		accuracy = float64(keystrokes-misses) / float64(keystrokes)
	}
	if durationMs <= 0 {
		return 0, accuracy
	}
	minutes := float64(durationMs) / 60000.0
	wpm = float64(score) / minutes
	return wpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary of sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalScore, totalWPM, totalAcc float64
	best := 0
	for _, s := range sessions {
		wpm, acc := SessionMetrics(s.Score, s.Keystrokes, s.Misses, s.DurationMs)
		totalScore += float64(s.Score)
		totalWPM += wpm
		totalAcc += acc
		if s.Score > best {
			best = s.Score
		}
	}
	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Best Score: %d", best),
		fmt.Sprintf("Avg Score: %.2f", totalScore/count),
		fmt.Sprintf("Avg WPM: %.2f", totalWPM/count),
		fmt.Sprintf("Avg Accuracy: %.2f%%", (totalAcc/count)*100),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCharTable prints per-character aggregates, weakest first.
func RenderCharTable(w io.Writer, aggs []model.CharAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No character stats found.")
		return err
	}
	rows := make([]model.CharAggregate, len(aggs))
	copy(rows, aggs)
	sort.Slice(rows, func(i, j int) bool {
		ai, aj := accuracy(rows[i]), accuracy(rows[j])
		if ai == aj {
			return rows[i].Char < rows[j].Char
		}
		return ai < aj
	})

	if _, err := fmt.Fprintln(w, "Per-Character"); err != nil {
		return err
	}
	tableRows := make([]charRow, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, newCharRow(r))
	}
	for _, line := range charTableLines(tableRows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
