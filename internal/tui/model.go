// Package tui provides the Bubble Tea host for the typing game.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/model"
	statsPkg "github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/store"
)

const (
	defaultTickInterval = 10 * time.Millisecond
	defaultMissFlash    = 100 * time.Millisecond
)

type tickMsg struct {
	generation uint64
}

type missClearMsg struct {
	seq uint64
}

// Options wires a Model.
type Options struct {
	Config     model.Config
	Controller *game.Controller
	// Store persists finished sessions; nil disables saving.
	Store    *store.Store
	Logger   zerolog.Logger
	WordList string
	// Weak is refreshed after each session when focus-weak is on.
	Weak *generator.WeightedPicker
}

// Model implements the Bubble Tea game UI.
type Model struct {
	config   model.Config
	ctrl     *game.Controller
	store    *store.Store
	log      zerolog.Logger
	wordList string
	weak     *generator.WeightedPicker

	keys keyMap
	help help.Model

	width  int
	height int

	lastScore int
	hasLast   bool
	bestScore int
	saveErr   bool
}

// NewModel constructs a game TUI model.
func NewModel(opts Options) *Model {
	m := &Model{
		config:   opts.Config,
		ctrl:     opts.Controller,
		store:    opts.Store,
		log:      opts.Logger,
		wordList: opts.WordList,
		weak:     opts.Weak,
		keys:     newKeyMap(),
		help:     help.New(),
	}
	if m.config.TickInterval <= 0 {
		m.config.TickInterval = defaultTickInterval
	}
	if m.config.MissFlash <= 0 {
		m.config.MissFlash = defaultMissFlash
	}
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tickMsg:
		switch m.ctrl.Tick(msg.generation) {
		case game.TickContinue:
			return m, m.tickCmd(msg.generation)
		case game.TickFinished:
			m.finishSession()
			m.keys.setPlaying(false)
		}
		return m, nil
	case missClearMsg:
		m.ctrl.ClearMiss(msg.seq)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if !m.ctrl.Playing() && key.Matches(msg, m.keys.Back) {
		return tea.Quit
	}
	var cmds []tea.Cmd
	for _, k := range gameKeys(msg) {
		switch m.ctrl.HandleKey(k) {
		case game.KeyStarted:
			gen := m.ctrl.Session().Generation
			m.keys.setPlaying(true)
			m.log.Debug().Str("session", m.ctrl.Session().ID).Uint64("generation", gen).Msg("session started")
			cmds = append(cmds, m.tickCmd(gen))
		case game.KeyMiss:
			cmds = append(cmds, m.missCmd(m.ctrl.MissSeq()))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) tickCmd(generation uint64) tea.Cmd {
	return tea.Tick(m.config.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func (m *Model) missCmd(seq uint64) tea.Cmd {
	return tea.Tick(m.config.MissFlash, func(time.Time) tea.Msg {
		return missClearMsg{seq: seq}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	d := m.ctrl.Display()
	content := m.renderPanel(d)
	if m.width == 0 || m.height == 0 {
		return content
	}
	var placeOpts []lipgloss.WhitespaceOption
	if d.Miss {
		placeOpts = append(placeOpts, lipgloss.WithWhitespaceBackground(missBackground))
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content, placeOpts...)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content, placeOpts...)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderPanel(d game.Display) string {
	status := fmt.Sprintf("%s %s   %s %d",
		labelStyle.Render("Time"), valueStyle.Render(d.Time),
		labelStyle.Render("Score"), d.Score)
	lines := []string{
		status,
		"",
		renderWord(d, m.wordWidth()),
		"",
		messageStyle.Render(d.Message),
	}
	style := panelStyle
	if d.Miss {
		style = missPanelStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m *Model) wordWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width)*0.70) - panelStyle.GetHorizontalFrameSize()
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) renderFooter() string {
	segments := []string{}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %d", m.lastScore))
	}
	segments = append(segments, fmt.Sprintf("Best %d", m.bestScore))
	if m.saveErr {
		segments = append(segments, "not saved")
	}
	footer := footerStyle.Render(strings.Join(segments, " · "))
	if h := m.help.View(m.keys); h != "" {
		footer += "  " + h
	}
	return footer
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	sessions, err := m.store.ListSessions(ctx, model.StatsConfig{Lang: m.config.Lang})
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load session stats")
		return
	}
	if len(sessions) > 0 {
		m.lastScore = sessions[len(sessions)-1].Score
		m.hasLast = true
	}
	best, err := m.store.BestScore(ctx, m.config.Lang)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load best score")
		return
	}
	m.bestScore = best
}

func (m *Model) finishSession() {
	res := m.ctrl.Result()
	res.Lang = m.config.Lang
	res.WordList = m.wordList

	m.lastScore = res.Score
	m.hasLast = true
	if res.Score > m.bestScore {
		m.bestScore = res.Score
	}
	wpm, acc := statsPkg.SessionMetrics(res.Score, res.Keystrokes, res.Misses, res.DurationMs)
	m.log.Info().
		Str("session", res.ID).
		Int("score", res.Score).
		Int("keystrokes", res.Keystrokes).
		Int("misses", res.Misses).
		Float64("wpm", wpm).
		Float64("accuracy", acc).
		Msg("session finished")

	if m.store == nil || m.config.NoSave {
		return
	}
	m.saveErr = false
	if _, err := m.store.InsertSession(context.Background(), res); err != nil {
		m.saveErr = true
		m.log.Error().Err(err).Str("session", res.ID).Msg("failed to save session")
		return
	}
	if m.config.FocusWeak && m.weak != nil {
		m.refreshWeakSet()
	}
}

func (m *Model) refreshWeakSet() {
	aggs, err := m.store.GetWeakChars(context.Background(), m.config.WeakWindow, m.config.Lang)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load weak chars")
		return
	}
	m.weak.WeakSet = statsPkg.SelectWeakChars(aggs, m.config.WeakTop)
	m.log.Debug().Int("weak", len(m.weak.WeakSet)).Msg("weak set refreshed")
}
