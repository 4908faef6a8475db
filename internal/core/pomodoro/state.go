package pomodoro

// State represents the current session mode.
type State string

const (
	StatePreFocus State = "pre-focus"
	StateFocus    State = "focus"
	StatePreBreak State = "pre-break"
	StateBreak    State = "break"
)

// Valid reports whether state is one of the known session states.
func (state State) Valid() bool {
	switch state {
	case StatePreFocus, StateFocus, StatePreBreak, StateBreak:
		return true
	}
	return false
}

// Snapshot is a consistent view of the session for front ends.
type Snapshot struct {
	State     State
	Remaining int
	FocusTime int
	TotalTime int
	Running   bool
}

// Title is the heading shown for a session state.
func (state State) Title() string {
	switch state {
	case StatePreFocus:
		return "Ready to focus"
	case StateFocus:
		return "Focus"
	case StatePreBreak:
		return "Time for a break"
	case StateBreak:
		return "Break"
	default:
		return string(state)
	}
}
