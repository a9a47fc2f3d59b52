package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - held movement axis
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionPause        // P - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit game/session
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
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer buttons as reported by hosts. Only the primary button fires.
const (
	ButtonPrimary   = 0
	ButtonMiddle    = 1
	ButtonSecondary = 2
)

// Key names delivered to games in InputFrame.Keys.
const (
	KeySpace = "space"
)

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions maps held actions to whether they are active this frame.
	Actions map[Action]bool

	// Buttons lists pointer buttons pressed since the previous frame, in order.
	Buttons []int

	// Keys lists named key presses since the previous frame, in order.
	Keys []string

	// PointerX and PointerY are the last known pointer position in screen cells.
	PointerX, PointerY int
	HasPointer         bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PressButton records a pointer button press.
func (f *InputFrame) PressButton(button int) {
	f.Buttons = append(f.Buttons, button)
}

// PressKey records a named key press.
func (f *InputFrame) PressKey(key string) {
	f.Keys = append(f.Keys, key)
}

// MovePointer records the pointer position in screen cells.
func (f *InputFrame) MovePointer(x, y int) {
	f.PointerX = x
	f.PointerY = y
	f.HasPointer = true
}

// Clear resets actions and presses for the next frame.
// The pointer position is kept since pointers report only on motion.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Buttons = f.Buttons[:0]
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Buttons = append([]int(nil), f.Buttons...)
	clone.Keys = append([]string(nil), f.Keys...)
	clone.PointerX = f.PointerX
	clone.PointerY = f.PointerY
	clone.HasPointer = f.HasPointer
	return clone
}
