package echoquill

import (
	"errors"
	"fmt"
)

// User-facing messages.
const (
	MsgMissingTheme     = "Please enter a theme or prompt!"
	MsgGenerationFailed = "Failed to generate story."
	MsgConnectionFailed = "Error connecting to backend."
)

// ErrInFlight is returned when a generate action is triggered while another is loading.
var ErrInFlight = errors.New("generation already in progress")

// ValidationError describes form input that cannot be sent to the service.
type ValidationError struct {
	Field  string // Name of the offending field, e.g. "theme"
	Reason string // Why the value was rejected
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ServiceError is a non-success response from the generation service.
type ServiceError struct {
	StatusCode int
	Detail     string // Service-provided message, empty when the body carried none
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("generation service returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("generation service returned HTTP %d: %s", e.StatusCode, e.Detail)
}

// TransportError is a connectivity failure or an unreadable response.
type TransportError struct {
	Op  string // "send", "read" or "decode"
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("generation transport %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage converts an error from a generate action into the text shown to the user.
// The service detail message is only used for service errors.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return MsgMissingTheme
	}
	var serr *ServiceError
	if errors.As(err, &serr) {
		if serr.Detail != "" {
			return serr.Detail
		}
		return MsgGenerationFailed
	}
	if errors.Is(err, ErrInFlight) {
		return "A story is already being generated."
	}
	return MsgConnectionFailed
}
