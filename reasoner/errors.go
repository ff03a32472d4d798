package reasoner

import (
	"fmt"

	"github.com/pkg/errors"
)

// LogicalError reports an internal inconsistency in the reasoner's own
// bookkeeping (a bug, not a malformed ontology) — e.g. an edge pointing at
// a node that no longer exists after a merge.
type LogicalError struct {
	Message string
}

func (e *LogicalError) Error() string { return "internal reasoner error: " + e.Message }

func newLogicalError(format string, args ...any) error {
	return errors.WithStack(&LogicalError{Message: fmt.Sprintf(format, args...)})
}

// Cancelled is returned in place of a consistency verdict when the caller's
// context is done before the tableau reaches a fixed point. It is
// distinguished from both "consistent" and "inconsistent" — the caller
// learns nothing about satisfiability from it.
type Cancelled struct{ Cause error }

func (e *Cancelled) Error() string { return "reasoning cancelled: " + e.Cause.Error() }
func (e *Cancelled) Unwrap() error { return e.Cause }

func newCancelled(cause error) error {
	return errors.WithStack(&Cancelled{Cause: cause})
}
