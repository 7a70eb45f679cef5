package sequencer

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfDependency is the kind of error returned when a job depends on itself.
	ErrSelfDependency = errors.New("a list of jobs cannot have a job that has itself as a dependency")
	// ErrCircularReference is the kind of error returned when following a
	// job's dependency chain leads back into a cycle.
	ErrCircularReference = errors.New("a list of jobs cannot have circular references")
	// ErrUnknownDependency reports a dependency on a job that was never
	// declared. It is a broken precondition of the input, not a sequencing
	// error, so IsSequencingError reports false for it.
	ErrUnknownDependency = errors.New("dependency refers to an undeclared job")
)

// Error is a sequencing failure for a single job declaration.
type Error struct {
	Kind       error
	Job        any
	Dependency any
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: job %v depends on %v", e.Kind.Error(), e.Job, e.Dependency)
}

// Unwrap returns the error kind so errors.Is can match the sentinels.
func (e *Error) Unwrap() error { return e.Kind }

// IsSequencingError reports whether err is one of the expected sequencing
// failures (self-dependency or circular reference) that should be reported
// back to the user rather than treated as a defect.
func IsSequencingError(err error) bool {
	return errors.Is(err, ErrSelfDependency) || errors.Is(err, ErrCircularReference)
}

func newError[K comparable](kind error, job, dep K) error {
	return &Error{Kind: kind, Job: job, Dependency: dep}
}
