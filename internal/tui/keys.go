package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordrush/internal/game"
)

type keyMap struct {
	Start key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// setPlaying hides the idle-only bindings while a session runs.
func (k *keyMap) setPlaying(playing bool) {
	k.Start.SetEnabled(!playing)
	k.Back.SetEnabled(!playing)
}

// gameKeys normalizes a terminal key event. Keys without a character
// payload still produce one event so they count as a keystroke while playing.
func gameKeys(msg tea.KeyMsg) []game.Key {
	if msg.Alt {
		return []game.Key{{}}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []game.Key{{Start: true, Char: ' '}}
	case tea.KeyRunes:
		keys := make([]game.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, game.Key{Start: r == ' ', Char: r})
		}
		return keys
	default:
		return []game.Key{{}}
	}
}
