package core

// Action is a semantic input, independent of the physical key.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	ActionScoreboard

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionConfirm:    "Confirm",
	ActionBack:       "Back",
	ActionRestart:    "Restart",
	ActionQuit:       "Quit",
	ActionPause:      "Pause",
	ActionScoreboard: "Scoreboard",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed during one host frame.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as pressed.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.bits |= 1 << uint(a)
	}
}

// Has reports whether the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action was pressed.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops every action for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the pressed actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
