package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a held action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "p":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// IsMovement reports whether an action is a held movement axis.
func IsMovement(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// MapPress translates one-shot presses delivered to the game as keys or
// pointer buttons. Space is forwarded as a key; F fires like the primary
// pointer button for keyboard-only terminals.
func (km *KeyMapper) MapPress(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case " ":
		frame.PressKey(core.KeySpace)
		return true
	case "f":
		frame.PressButton(core.ButtonPrimary)
		return true
	}
	return false
}

// MapMouse records pointer motion and button presses. Terminal cells are
// reported as pointer coordinates.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.MovePointer(msg.X, msg.Y)
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		frame.PressButton(core.ButtonPrimary)
	case tea.MouseButtonMiddle:
		frame.PressButton(core.ButtonMiddle)
	case tea.MouseButtonRight:
		frame.PressButton(core.ButtonSecondary)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
