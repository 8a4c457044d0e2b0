package validation

import (
	"errors"

	"github.com/aspireai/aspire-site/internal/api/dto/common"
	"github.com/aspireai/aspire-site/internal/contact"
)

var ruleMessages = map[string]string{
	"required": "This field is required",
	"email":    "Enter a valid email address",
}

// FormatValidationError converts contact form validation failures into
// response details. Errors of any other kind yield nil.
func FormatValidationError(err error) []common.ValidationError {
	var verr *contact.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}

	details := make([]common.ValidationError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		msg, ok := ruleMessages[f.Rule]
		if !ok {
			msg = "Invalid value"
		}
		details = append(details, common.ValidationError{
			Field:   string(f.Field),
			Message: msg,
			Value:   f.Rule,
		})
	}
	return details
}
