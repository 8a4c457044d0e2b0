package contact

import (
	domain "github.com/aspireai/aspire-site/internal/contact"
)

// ContactRequest represents a posted contact form. Values are bound as-is;
// required-field rules are enforced by the contact form before submitting.
type ContactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Message string `form:"message" json:"message"`
}

// ToSubmission converts the request into the form's field set.
func (r ContactRequest) ToSubmission() domain.Submission {
	return domain.Submission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// ContactResponse is returned to clients that ask for JSON instead of HTML
type ContactResponse struct {
	Sent         bool                 `json:"sent"`
	Notification *domain.Notification `json:"notification,omitempty"`
	Fields       domain.Submission    `json:"fields"`
}
