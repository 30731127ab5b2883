package model

import (
	"errors"
	"fmt"
)

// Humility score domain bounds.
const (
	MinHumilityScore = 1
	MaxHumilityScore = 10
)

// Error codes
const (
	ErrCodeNotFound     = "HERO001"
	ErrCodeValidation   = "HERO002"
	ErrCodeStoreFailure = "HERO003"
)

// Sentinel errors. Handlers rely on errors.Is against these to pick the
// right status code, so store failures must never be wrapped as ErrNotFound.
var (
	ErrSuperheroNotFound = errors.New("superhero not found")
	ErrInvalidInput      = errors.New("invalid superhero input")
	ErrStoreFailure      = errors.New("superhero store failure")
)

// SuperheroError carries a stable code alongside the wrapped sentinel.
type SuperheroError struct {
	Code    string
	Message string
	Err     error
}

func (e *SuperheroError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SuperheroError) Unwrap() error {
	return e.Err
}

func NewNotFoundError() *SuperheroError {
	return &SuperheroError{
		Code:    ErrCodeNotFound,
		Message: "Superhero not found",
		Err:     ErrSuperheroNotFound,
	}
}

func NewValidationError(message string) *SuperheroError {
	return &SuperheroError{
		Code:    ErrCodeValidation,
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewStoreFailureError redacts the underlying driver error: it stays on the
// chain for logging but the Message is safe to log at the boundary and the
// client only ever sees an opaque 500 body.
func NewStoreFailureError(op string, err error) *SuperheroError {
	return &SuperheroError{
		Code:    ErrCodeStoreFailure,
		Message: fmt.Sprintf("store operation %s failed", op),
		Err:     fmt.Errorf("%w: %w", ErrStoreFailure, err),
	}
}
