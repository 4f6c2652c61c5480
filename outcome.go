package reforge

// Outcome reports the result of a single reload consult.
type Outcome int

const (
	// OutcomeNoChange indicates no rebuild was attempted; the held
	// artifact is unchanged.
	OutcomeNoChange Outcome = iota

	// OutcomeRebuilt indicates a change was detected and the artifact was
	// rebuilt successfully.
	OutcomeRebuilt

	// OutcomeFailed indicates a rebuild was attempted and failed. The
	// previously built artifact remains in use.
	OutcomeFailed
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoChange:
		return "no_change"
	case OutcomeRebuilt:
		return "rebuilt"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
