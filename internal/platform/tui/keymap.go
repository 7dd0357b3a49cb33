package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to actions.
// Arrows, WASD and vim keys all steer.
var gameKeys = map[string]core.Action{
	"up": core.ActionUp, "w": core.ActionUp, "k": core.ActionUp,
	"down": core.ActionDown, "s": core.ActionDown, "j": core.ActionDown,
	"left": core.ActionLeft, "a": core.ActionLeft, "h": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight, "l": core.ActionRight,

	"p": core.ActionPause, " ": core.ActionPause,
	"b": core.ActionBack, "esc": core.ActionBack,
	"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
	"r": core.ActionRestart,

	"enter": core.ActionConfirm,
	"tab":   core.ActionScoreboard,
}

// MenuAction is a navigation step in the menu.
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

var menuKeys = map[string]MenuAction{
	"up": MenuActionUp, "w": MenuActionUp, "k": MenuActionUp,
	"down": MenuActionDown, "s": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"q": MenuActionQuit, "ctrl+c": MenuActionQuit,

	"tab": MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the key's action; isQuit reports a request to leave the
// program. Unbound keys map to core.ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame and reports whether the
// key asked to quit. Quit itself is never recorded.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
