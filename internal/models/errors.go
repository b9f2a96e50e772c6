// internal/models/errors.go
package models

import "fmt"

// InvalidInputError reports a required field that is missing or out of
// domain. The engine fails fast on these and produces no partial result;
// missing optional data never raises and only lowers confidence.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// NewInvalidInput builds an InvalidInputError for a field.
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}
