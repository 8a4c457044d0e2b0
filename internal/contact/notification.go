package contact

import "errors"

// NotificationKind classifies a notification as a success or an error.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the transient message shown after a submission attempt.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

var (
	sentNotification = Notification{
		Kind:        NotificationSuccess,
		Title:       "Message Sent!",
		Description: "We’ll get back to you within 24 hours.",
	}
	unexpectedNotification = Notification{
		Kind:        NotificationError,
		Title:       "Error",
		Description: "Unexpected response from server.",
	}
	failedNotification = Notification{
		Kind:        NotificationError,
		Title:       "Error",
		Description: "Failed to send message. Please try again or email us directly.",
	}
)

// NotificationFor returns the notification shown for the outcome of a submission.
// A nil error yields the success notification.
func NotificationFor(err error) Notification {
	switch {
	case err == nil:
		return sentNotification
	case errors.Is(err, ErrServerRejected), errors.Is(err, ErrMalformedResponse):
		return unexpectedNotification
	default:
		return failedNotification
	}
}
