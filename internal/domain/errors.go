package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a claim lookup exhausted both paths without a match,
	// or a point lookup came back empty.
	ErrNotFound = errors.New("no matching record")
	// ErrStoreUnavailable wraps a repository failure; safe to retry, no
	// partial delete is assumed.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError marks correctable bad input (missing code, malformed id).
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func Invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
