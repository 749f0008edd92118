// Package errors defines the single error taxonomy the engine raises:
// every precondition violation at a public API surfaces as an
// InvalidArgumentError.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel all InvalidArgumentError values satisfy
// via Is, so callers can write errors.Is(err, errors.ErrInvalidArgument)
// without caring about the concrete field that failed.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError carries a human-readable reason alongside the field
// or subject that failed validation.
type InvalidArgumentError struct {
	Subject string // e.g. "document id", "stop word", "query term"
	Reason  string
}

func (e *InvalidArgumentError) Error() string {
	if e.Subject == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Subject, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument builds an InvalidArgumentError for the given subject.
func NewInvalidArgument(subject, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Subject: subject, Reason: reason}
}
