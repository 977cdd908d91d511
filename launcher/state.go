package launcher

// State is the lifecycle state of a platform adapter.
type State int

const (
	StateNotStarted State = iota
	StateResolving
	StateRunning
	StateInert
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateResolving:
		return "resolving"
	case StateRunning:
		return "running"
	case StateInert:
		return "inert"
	default:
		return "unknown"
	}
}
