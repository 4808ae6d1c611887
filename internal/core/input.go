package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // Up arrow, k, w - move cursor up
	ActionDown                // Down arrow, j, s - move cursor down
	ActionLeft                // Left arrow, h, a - move cursor left
	ActionRight               // Right arrow, l, d - move cursor right
	ActionReveal              // Space, Enter - reveal the cell under the cursor
	ActionFlag                // f - toggle a flag under the cursor
	ActionChord               // c - reveal around a satisfied number
	ActionRestart             // r - start a new board
	ActionBeginner            // 1
	ActionIntermediate        // 2
	ActionExpert              // 3
	ActionCustom              // 4
	ActionQuit                // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionChord:
		return "Chord"
	case ActionRestart:
		return "Restart"
	case ActionBeginner:
		return "Beginner"
	case ActionIntermediate:
		return "Intermediate"
	case ActionExpert:
		return "Expert"
	case ActionCustom:
		return "Custom"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Pointer is a pointer press in screen coordinates.
type Pointer struct {
	X, Y   int
	Button Button
}

// InputFrame holds the input collected during one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Pointer is the last pointer press of the frame, if any.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a pointer press, replacing any earlier one in the frame.
func (f *InputFrame) Press(x, y int, b Button) {
	f.Pointer = Pointer{X: x, Y: y, Button: b}
}

// Pressed reports whether the frame carries a pointer press.
func (f InputFrame) Pressed() bool {
	return f.Pointer.Button != ButtonNone
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
