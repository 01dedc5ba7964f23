package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrush/internal/game"
)

const ellipsis = "…"

var missBackground = lipgloss.Color("#3A1214")

var (
	typedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787")).Underline(true)
	finishedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	panelStyle    = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	missPanelStyle = panelStyle.
			BorderForeground(lipgloss.Color("#FF4D4F")).
			Background(missBackground)
)

// renderWord highlights the typed prefix and leaves the untyped suffix plain. When the
// word is wider than maxWidth the suffix is cut so the next character stays visible.
func renderWord(d game.Display, maxWidth int) string {
	if d.Finished {
		return finishedStyle.Render(game.FinishedMarker)
	}
	typed, untyped := d.Typed, d.Untyped
	if maxWidth > 0 && runewidth.StringWidth(typed+untyped) > maxWidth {
		typedWidth := runewidth.StringWidth(typed)
		if typedWidth >= maxWidth/2 {
			keep := maxWidth/2 - runewidth.StringWidth(ellipsis)
			typed = ellipsis + runewidth.TruncateLeft(typed, typedWidth-max(keep, 0), "")
		}
		room := maxWidth - runewidth.StringWidth(typed)
		untyped = runewidth.Truncate(untyped, max(room, 1), ellipsis)
	}
	return typedStyle.Render(typed) + untyped
}
