package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrPreconditionFailed = errors.New("precondition failed")
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

// TransitionError reports a workflow transition that is not legal from the
// theme's current status. Returned when the edge is absent from the
// transition graph or when the conditional status update matched zero rows
// (the status changed concurrently).
type TransitionError struct {
	From ThemeStatus
	To   ThemeStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not allowed", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NewTransitionError creates a TransitionError for the given edge.
func NewTransitionError(from, to ThemeStatus) *TransitionError {
	return &TransitionError{From: from, To: to}
}

// Machine-readable precondition reasons.
const (
	ReasonIncompleteContent       = "incomplete_content"
	ReasonOpenCriticalAnnotations = "open_critical_annotations"
	ReasonAlreadyResolved         = "already_resolved"
	ReasonNotReviewer             = "not_a_reviewer"
	ReasonNotEditable             = "theme_not_editable"
)

// PreconditionError reports a business precondition that blocked an
// otherwise legal operation (incomplete content on submit, open critical
// annotations on approve, double resolution of an annotation).
type PreconditionError struct {
	Reason  string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error { return ErrPreconditionFailed }

// NewPreconditionError creates a PreconditionError with a machine-readable reason.
func NewPreconditionError(reason, message string) *PreconditionError {
	return &PreconditionError{Reason: reason, Message: message}
}
