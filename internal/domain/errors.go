package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrDelivery      = errors.New("delivery failed")
	ErrAuthToken     = errors.New("invalid auth token")
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

// ConflictError reports the lessons that already occupy a requested slot.
type ConflictError struct {
	LessonIDs []uuid.UUID
}

func (e *ConflictError) Error() string {
	ids := make([]string, len(e.LessonIDs))
	for i, id := range e.LessonIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("time slot conflicts with existing lesson(s): %s", strings.Join(ids, ", "))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// DeliveryError is returned by notifiers when a reminder could not be handed
// over to the outbound channel.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %s: %v", e.Recipient, e.Err)
}

// Unwrap exposes both ErrDelivery and the underlying transport error.
func (e *DeliveryError) Unwrap() []error { return []error{ErrDelivery, e.Err} }
