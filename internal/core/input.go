package core

import "slices"

// Action is a player intent, independent of the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// IsMove reports whether a is one of the four directions.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame is everything pressed between two ticks, in press order.
// Pressing the same key twice records two presses. The zero value is an
// empty frame.
type InputFrame struct {
	presses []Action
}

// NewInputFrame returns a frame holding the given presses.
func NewInputFrame(presses ...Action) InputFrame {
	return InputFrame{presses: slices.Clone(presses)}
}

// Press records one press of a.
func (f *InputFrame) Press(a Action) {
	f.presses = append(f.presses, a)
}

// Pressed reports whether a was pressed at least once.
func (f InputFrame) Pressed(a Action) bool {
	return slices.Contains(f.presses, a)
}

// Presses returns the presses oldest first. The slice is reused after
// Reset.
func (f InputFrame) Presses() []Action {
	return f.presses
}

// Reset empties the frame, keeping its buffer.
func (f *InputFrame) Reset() {
	f.presses = f.presses[:0]
}
