package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents a shell-level action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota // Forward the key to the current page
	ActionQuit
	ActionClose
	ActionNext
	ActionBack
	ActionSubmit
	ActionPageDown
	ActionPageUp
)

// KeyHandler maps keys to shell actions. Everything it does not claim
// belongs to the current page.
type KeyHandler struct{}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action.
func (k *KeyHandler) Handle(msg tea.KeyMsg) KeyAction {
	switch msg.String() {
	case "ctrl+c":
		return ActionQuit
	case "esc":
		return ActionClose
	case "tab", "ctrl+n":
		return ActionNext
	case "shift+tab", "ctrl+p":
		return ActionBack
	case "ctrl+s":
		return ActionSubmit
	case "pgdown":
		return ActionPageDown
	case "pgup":
		return ActionPageUp
	default:
		return ActionNone
	}
}
