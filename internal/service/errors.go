package service

import (
	"errors"
	"fmt"
)

var (
	// ErrQueryFailure wraps store errors raised while listing recipes
	ErrQueryFailure = errors.New("failed to fetch recipes")
	// ErrInvalidArgument is returned for pagination values that cannot be served
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrValidation is matched by every *ValidationError
	ErrValidation = errors.New("validation failed")
	// ErrPersistFailure wraps insert errors after validation passed
	ErrPersistFailure = errors.New("failed to submit recipe")
	// ErrRecipeNotFound is returned when no recipe has the requested id
	ErrRecipeNotFound = errors.New("recipe not found")
)

// ValidationKind enumerates why a submission was rejected
type ValidationKind string

const (
	MissingField         ValidationKind = "missing_field"
	MissingIngredients   ValidationKind = "missing_ingredients"
	MissingInstructions  ValidationKind = "missing_instructions"
	UnsupportedImageType ValidationKind = "unsupported_image_type"
	ImageTooLarge        ValidationKind = "image_too_large"
	ImageUnreadable      ValidationKind = "image_unreadable"
	InvalidImageURL      ValidationKind = "invalid_image_url"
)

// ValidationError is a rejected submission. Message is safe to show users.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrValidation) match any validation failure
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(kind ValidationKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func missingField(field string) *ValidationError {
	return newValidationError(MissingField, field, fmt.Sprintf("Missing required field: %s", field))
}
