package errors

import "fmt"

// IncompleteDeletionError reports a cascade that failed partway through its
// ordered steps. Earlier steps are already committed; retrying the same
// top-level delete recomputes the plan from current state and finishes the
// remaining steps.
type IncompleteDeletionError struct {
	Step         string // "tasks", "projects" or "organization"
	TasksDeleted int
	Cause        error
}

func (e *IncompleteDeletionError) Error() string {
	return fmt.Sprintf("incomplete deletion: failed deleting %s: %v", e.Step, e.Cause)
}

func (e *IncompleteDeletionError) Unwrap() error {
	return e.Cause
}
