package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkraev/tiltmaze/internal/core"
)

// KeyMap holds the key bindings. It implements help.KeyMap so the help
// bar below the play field stays in sync with the actual bindings.
type KeyMap struct {
	TiltCCW key.Binding
	TiltCW  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TiltCCW: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "tilt left"),
		),
		TiltCW: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "tilt right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the single-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TiltCCW, k.TiltCW, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TiltCCW, k.TiltCW},
		{k.Pause, k.Restart, k.Quit},
	}
}

// MapKeyToFrame updates an input frame based on a key message and
// reports whether the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.TiltCCW):
		frame.Set(core.ActionTiltCCW)
	case key.Matches(msg, k.TiltCW):
		frame.Set(core.ActionTiltCW)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}
