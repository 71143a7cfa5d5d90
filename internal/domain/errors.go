package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("permission denied")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError reports an operation that is not legal from the work
// item's current status. Re-entrant calls (assign on ASSIGNED) land here too.
type TransitionError struct {
	Current   Status
	Operation Operation
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s from %s", e.Operation, e.Current)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NewTransitionError creates a TransitionError for the given status and operation.
func NewTransitionError(current Status, op Operation) *TransitionError {
	return &TransitionError{Current: current, Operation: op}
}

// PermissionError reports an actor that fails a transition guard.
type PermissionError struct {
	Operation Operation
	ActorID   int64
	Reason    string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: actor %d cannot %s: %s", e.ActorID, e.Operation, e.Reason)
}

func (e *PermissionError) Unwrap() error { return ErrForbidden }

// NewPermissionError creates a PermissionError.
func NewPermissionError(op Operation, actorID int64, reason string) *PermissionError {
	return &PermissionError{Operation: op, ActorID: actorID, Reason: reason}
}
