package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// KeyMap defines the key bindings for the scene.
// Bindings are fixed; there is no user configuration of keys.
type KeyMap struct {
	Up    key.Binding
	Left  key.Binding
	Down  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the WASD + Escape bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to movement and quit signals.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// IsQuit reports whether the key is a quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Quit)
}

// Direction translates a key to a movement direction.
// Returns false for keys that do not move the player.
func (km *KeyMapper) Direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.DirUp, true
	case key.Matches(msg, km.keys.Left):
		return core.DirLeft, true
	case key.Matches(msg, km.keys.Down):
		return core.DirDown, true
	case key.Matches(msg, km.keys.Right):
		return core.DirRight, true
	}
	return 0, false
}

// MapKeyToState records a movement key press in state for the given frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToState(msg tea.KeyMsg, state *core.KeyState, frame uint64) bool {
	if km.IsQuit(msg) {
		return true
	}
	if dir, ok := km.Direction(msg); ok {
		state.Press(dir, frame)
	}
	return false
}
