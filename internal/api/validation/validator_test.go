package validation

import (
	"errors"
	"testing"

	"github.com/aspireai/aspire-site/internal/contact"
)

func TestFormatValidationError(t *testing.T) {
	err := contact.Validate(contact.Submission{Name: "Jane", Email: "not-an-email"})

	details := FormatValidationError(err)
	if len(details) != 2 {
		t.Fatalf("got %d details, want 2: %+v", len(details), details)
	}

	byField := map[string]string{}
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	if byField["email"] != "Enter a valid email address" {
		t.Errorf("email message = %q", byField["email"])
	}
	if byField["message"] != "This field is required" {
		t.Errorf("message message = %q", byField["message"])
	}
}

func TestFormatValidationErrorIgnoresOtherErrors(t *testing.T) {
	if got := FormatValidationError(errors.New("boom")); got != nil {
		t.Errorf("FormatValidationError(other) = %+v, want nil", got)
	}
	if got := FormatValidationError(nil); got != nil {
		t.Errorf("FormatValidationError(nil) = %+v, want nil", got)
	}
}
