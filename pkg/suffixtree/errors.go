package suffixtree

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every InvariantError.
var ErrInvariant = errors.New("suffix tree invariant violated")

// InvariantError reports a structural defect detected during construction or
// traversal. It is raised with panic and never describes bad user input.
type InvariantError struct {
	// Op names the operation that detected the violation.
	Op string

	// Detail describes the violated condition.
	Detail string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvariant.Error(), e.Op, e.Detail)
}

// Unwrap allows errors.Is(err, ErrInvariant).
func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

func violation(op, format string, args ...any) *InvariantError {
	return &InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
