// Package apperror defines the error taxonomy shared by services and the
// HTTP layer: NotFound for missing referenced entities, Validation for
// malformed or incomplete filter combinations. Anything else is treated as
// an internal failure by the boundary.
package apperror

import (
	"errors"
	"fmt"
)

// NotFoundError marks a lookup for an entity id that does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for the given resource name and id.
func NewNotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err (or anything it wraps) is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// ValidationError marks request parameters rejected before any storage call.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// NewValidation builds a ValidationError with the given detail message.
func NewValidation(detail string) error {
	return &ValidationError{Detail: detail}
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
