package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctrlsworld/arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable. A single key
// can map to several actions; each game reads the ones it understands.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions.
// Returns the actions (may be empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true

	case "left", "h", "a":
		return []core.Action{core.ActionLeft}, false
	case "right", "l", "d":
		return []core.Action{core.ActionRight}, false
	case "up", "w":
		return []core.Action{core.ActionUp, core.ActionRotateCW}, false
	case "down", "s", "j":
		return []core.Action{core.ActionDown, core.ActionSoftDrop, core.ActionGuard}, false
	case "x":
		return []core.Action{core.ActionRotateCW}, false
	case "z":
		return []core.Action{core.ActionRotateCCW}, false
	case " ":
		return []core.Action{core.ActionHardDrop, core.ActionAttack}, false
	case "c":
		return []core.Action{core.ActionHold}, false
	case "t":
		return []core.Action{core.ActionBulletTime}, false
	case "g":
		return []core.Action{core.ActionGuard}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
