package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong-arcade/internal/core"
)

// KeyMap holds the key bindings for the landing and game views.
// It implements help.KeyMap so the footer lists whatever is enabled.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Play    key.Binding
	Pause   key.Binding
	Rematch key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("↑/w", "paddle up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("↓/s", "paddle down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play pong"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Rematch: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forLanding enables only the bindings that apply on the landing view.
func (k KeyMap) forLanding() KeyMap {
	k.Up.SetEnabled(false)
	k.Down.SetEnabled(false)
	k.Play.SetEnabled(true)
	k.Pause.SetEnabled(false)
	k.Rematch.SetEnabled(false)
	k.Back.SetEnabled(false)
	k.Quit.SetEnabled(true)
	return k
}

// forGame enables the in-game bindings. Rematch only applies once the match
// is over, and pause only while it is still running.
func (k KeyMap) forGame(over bool) KeyMap {
	k.Up.SetEnabled(!over)
	k.Down.SetEnabled(!over)
	k.Play.SetEnabled(false)
	k.Pause.SetEnabled(!over)
	k.Rematch.SetEnabled(over)
	k.Back.SetEnabled(true)
	k.Quit.SetEnabled(true)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Up, k.Down, k.Pause, k.Rematch, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Play, k.Pause, k.Rematch},
		{k.Back, k.Quit},
	}
}

// Action translates a key message into an action using the enabled bindings.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Play):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Rematch):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
