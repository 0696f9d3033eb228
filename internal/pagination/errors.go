package pagination

import (
	"errors"
	"fmt"
)

// ErrValidation is the marker every ValidationError unwraps to.
var ErrValidation = errors.New("pagination: validation failed")

// ValidationError reports the first parameter that failed a check.
// Field holds the parameter name as callers know it (currentPage, pageSize, ...).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field string) error {
	return &ValidationError{Field: field, Message: "invalid " + field}
}

func inconsistent(total, length int) error {
	return &ValidationError{
		Field:   FieldTotalResultCount,
		Message: fmt.Sprintf("inconsistent state: totalResultCount < pageResults length (%d/%d)", total, length),
	}
}

// AsValidationError extracts the ValidationError from err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
