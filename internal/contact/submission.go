package contact

import (
	"fmt"
	"strings"
)

// Submission is the set of values captured by the contact form.
// All four fields are always encoded, even when empty.
type Submission struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Field identifies one input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}

// ParseField maps an input name to a Field.
func ParseField(name string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(name))); f {
	case FieldName, FieldEmail, FieldPhone, FieldMessage:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Get returns the value held for field.
func (s Submission) Get(field Field) string {
	switch field {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldMessage:
		return s.Message
	}
	return ""
}

// with returns a copy of s with field replaced by value.
func (s Submission) with(field Field, value string) (Submission, error) {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldMessage:
		s.Message = value
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return s, nil
}

// IsEmpty reports whether every field is blank.
func (s Submission) IsEmpty() bool {
	return s == Submission{}
}
