package reconcile

import (
	"errors"
	"fmt"
)

// Phase is a reconciler state.
type Phase string

// Reconciler phases. A run moves Idle → Fetching → Merging → Pushing → Done,
// or to Failed from any working phase, then back to Idle.
const (
	PhaseIdle     Phase = "idle"
	PhaseFetching Phase = "fetching"
	PhaseMerging  Phase = "merging"
	PhasePushing  Phase = "pushing"
	PhaseDone     Phase = "done"
	PhaseFailed   Phase = "failed"
)

// PhaseError wraps the error that ended a run with the phase it ended in.
type PhaseError struct {
	Phase Phase
	Cause error
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("sync %s failed: %v", e.Phase, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *PhaseError) Unwrap() error {
	return e.Cause
}

// FailedPhase extracts the phase from a run error.
func FailedPhase(err error) (Phase, bool) {
	var pe *PhaseError
	if errors.As(err, &pe) {
		return pe.Phase, true
	}

	return "", false
}
