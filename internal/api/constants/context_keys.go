package constants

// Context keys set by middleware and read by handlers
const (
	// Request context keys
	ContextKeyRequestID = "requestID"

	// Contact form context keys
	ContextKeyContact = "contact"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
)
