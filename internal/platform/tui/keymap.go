package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/doodle-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "a", "left", "h":
		return core.ActionLeft
	case "d", "right", "l":
		return core.ActionRight
	case " ", "w", "up", "k":
		return core.ActionJump
	case "r":
		return core.ActionRestart
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame records the key's action in the frame and returns it.
// Quit, back and restart are host actions and are returned without being
// recorded.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg)
	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		frame.Set(action)
	}
	return action
}

// MenuAction is a navigation action in the launcher menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key message to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "q", "ctrl+c", "esc":
		return MenuActionQuit
	}
	return MenuActionNone
}
