package bot

// State is the dispatcher lifecycle: Idle -> Reading -> Dispatching -> Idle,
// until an exit command moves it to Stopped for good.
type State int

const (
	StateIdle State = iota
	StateReading
	StateDispatching
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReading:
		return "reading"
	case StateDispatching:
		return "dispatching"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
