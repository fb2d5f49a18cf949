package walktrace

// State is the recording lifecycle state. The machine is cyclic:
// Idle → CountingDown → Recording → Idle, driven by a single toggle
// input plus the countdown expiry.
type State uint8

const (
	// Idle means no session is active. The last completed session, if
	// any, is still retained for inspection.
	Idle State = iota

	// CountingDown means the toggle fired and the start delay is
	// running. Further toggles are ignored until it expires, so the
	// same key cannot abort the countdown it just armed.
	CountingDown

	// Recording means samples are being collected on every tick.
	Recording
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case CountingDown:
		return "CountingDown"
	case Recording:
		return "Recording"
	default:
		return "Unknown"
	}
}
