package contact

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/aspireai/aspire-site/internal/logging"

	"github.com/go-playground/validator/v10"
)

// Client delivers a submission snapshot to the Contact API.
type Client interface {
	SubmitContact(ctx context.Context, s Submission) error
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, s Submission) error

func (f ClientFunc) SubmitContact(ctx context.Context, s Submission) error { return f(ctx, s) }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Form holds the state of one contact form for the lifetime of a page view.
// A Form is owned by a single goroutine and is not safe for concurrent use.
type Form struct {
	fields     Submission
	submitting bool

	client   Client
	notifier Notifier
	logger   *logging.Logger
}

// NewForm returns an empty form that submits through client and reports
// outcomes to notifier. A nil logger discards diagnostics.
func NewForm(client Client, notifier Notifier, logger *logging.Logger) *Form {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Form{
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Fields returns a copy of the current values.
func (f *Form) Fields() Submission {
	return f.fields
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// UpdateField replaces the value of one field and leaves the others untouched.
func (f *Form) UpdateField(field Field, value string) error {
	next, err := f.fields.with(field, value)
	if err != nil {
		return err
	}
	f.fields = next
	return nil
}

// Load replaces every field at once, as when a posted form is received.
func (f *Form) Load(s Submission) {
	f.fields = s
}

// Reset clears every field.
func (f *Form) Reset() {
	f.fields = Submission{}
}

// Validate applies the required-field rules to the current values.
func (f *Form) Validate() error {
	return Validate(f.fields)
}

// Validate checks s against the form's required-field rules.
func Validate(s Submission) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: Field(fe.Field()), Rule: fe.Tag()})
	}
	return out
}

// Submit sends a snapshot of the fields to the Contact API.
//
// Invalid input returns a *ValidationError without contacting the API or
// notifying. Otherwise exactly one request is made and exactly one
// notification is emitted; the fields are cleared only on success.
// Submitting reports true until the notification has been delivered.
func (f *Form) Submit(ctx context.Context) error {
	if err := f.Validate(); err != nil {
		return err
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	snapshot := f.fields
	err := f.client.SubmitContact(ctx, snapshot)
	if err != nil {
		if errors.Is(err, ErrServerRejected) || errors.Is(err, ErrMalformedResponse) {
			f.logger.Warn("Contact API did not accept submission: %v", err)
		} else {
			f.logger.Error("Error submitting contact form: %v", err)
		}
		f.notifier.Notify(NotificationFor(err))
		return err
	}

	f.notifier.Notify(NotificationFor(nil))
	f.Reset()
	return nil
}
