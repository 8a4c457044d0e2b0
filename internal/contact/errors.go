package contact

import (
	"errors"
	"strings"
)

var (
	ErrValidation        = errors.New("contact form is incomplete")
	ErrUnknownField      = errors.New("unknown contact form field")
	ErrServerRejected    = errors.New("contact API rejected the submission")
	ErrMalformedResponse = errors.New("contact API returned an unexpected payload")
	ErrTransport         = errors.New("contact API unreachable")
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field Field
	Rule  string
}

// ValidationError is returned by Validate and Submit when required inputs are missing.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f.Field)+" ("+f.Rule+")")
	}
	return ErrValidation.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field Field) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
