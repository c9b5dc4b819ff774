package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tapwords/internal/engine"
)

type keyMap struct {
	Restart   key.Binding
	Quit      key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl-r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl-q", "quit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
	}
}

// decode maps a key message to engine keys. Pasted input arrives as several
// runes in one message and becomes one key per rune.
func (k keyMap) decode(msg tea.KeyMsg) []engine.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return []engine.Key{{Kind: engine.KeyQuit}}
	case key.Matches(msg, k.Restart):
		return []engine.Key{{Kind: engine.KeyRestart}}
	case key.Matches(msg, k.Backspace):
		return []engine.Key{{Kind: engine.KeyBackspace}}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []engine.Key{engine.Char(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]engine.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, engine.Char(r))
		}
		return keys
	default:
		return nil
	}
}
