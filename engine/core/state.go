package core

// State of the render goroutine.
type State int32

const (
	StateCreated State = iota
	StateWaitingForStart
	StateInitializing
	StateRunning
	StateFinishing
	StateClosed
)

var stateNames = [...]string{"created", "waiting-for-start", "initializing", "running", "finishing", "closed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
