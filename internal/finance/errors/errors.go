package errors

import (
	"errors"
	"fmt"
)

// ValidationError reports input rejected at the service boundary. The
// repositories themselves never validate.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// DuplicateEntityError reports a category that already exists for the same
// user, name (case-insensitive) and type.
type DuplicateEntityError struct {
	Entity string
	Name   string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Name)
}

func NewDuplicateEntityError(entity, name string) error {
	return &DuplicateEntityError{Entity: entity, Name: name}
}

func IsDuplicateEntityError(err error) bool {
	var duplicateErr *DuplicateEntityError
	return errors.As(err, &duplicateErr)
}

// EntityInUseError reports a delete rejected because other records still
// reference the entity.
type EntityInUseError struct {
	Entity string
	Name   string
}

func (e *EntityInUseError) Error() string {
	return fmt.Sprintf("%s %q is still in use", e.Entity, e.Name)
}

func NewEntityInUseError(entity, name string) error {
	return &EntityInUseError{Entity: entity, Name: name}
}

func IsEntityInUseError(err error) bool {
	var inUseErr *EntityInUseError
	return errors.As(err, &inUseErr)
}

var ErrUnknownCategory = NewValidationError("Category does not exist for this user and type")
