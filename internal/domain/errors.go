package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Transform errors. Only ErrEncryption ever reaches a caller. ErrMissingKeyReference
// is logged as the reason a field stays plaintext; the rest are recorded as
// annotations on the node that triggered them.
var (
	ErrMissingKeyReference = errors.New("missing encryption key reference")
	ErrMissingDelegate     = errors.New("missing delegate identity")
	ErrLookupFailure       = errors.New("container lookup failed")
	ErrEncryption          = errors.New("encryption failed")
	ErrInvalidReference    = errors.New("invalid secure reference")
)

// MsgRequired is the validation message for a missing required field.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
