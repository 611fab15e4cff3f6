package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W, K, swipe up
	ActionRight             // Right arrow, D, L, swipe right
	ActionDown              // Down arrow, S, J, swipe down
	ActionLeft              // Left arrow, A, H, swipe left
	ActionReset             // R key, right click
	ActionToggleMute        // M key, click on the sound indicator
	ActionHelp              // ? key
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionReset:
		return "Reset"
	case ActionToggleMute:
		return "ToggleMute"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the unit vector of a directional action.
// ok is false for non-directional actions.
func (a Action) Direction() (dir Vec, ok bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionRight:
		return Right, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	}
	return Vec{}, false
}

// InputFrame represents the input collected between two frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// order keeps the first-seen order so directional input resolves deterministically.
	order []Action
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
	if !f.Actions[a] {
		f.order = append(f.order, a)
	}
	f.Actions[a] = true
}

// Ordered returns the triggered actions in the order they were first set.
func (f InputFrame) Ordered() []Action {
	return f.order
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.order) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}
