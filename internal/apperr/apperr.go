package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError marks bad input shape or range. The operation is never
// attempted against the store when one of these is returned.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Msg
	}
	return e.Msg
}

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// PermissionError marks an actor lacking rights for an operation.
type PermissionError struct {
	Msg string
}

func (e *PermissionError) Error() string { return e.Msg }

func Permission(msg string) error {
	return &PermissionError{Msg: msg}
}

// CollaboratorError wraps a failure of an external collaborator (asset
// storage, geocoding, place search). Enrichment-only callers swallow it;
// required callers propagate it.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

func Collaborator(op string, err error) error {
	return &CollaboratorError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPermission reports whether err is a PermissionError.
func IsPermission(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
