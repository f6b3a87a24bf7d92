package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a request does not complete within the
	// client timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrMalformedResponse is returned when a JSON response cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrLoginRejected is returned when the login endpoint answers without a
	// token.
	ErrLoginRejected = errors.New("login rejected")
)

// User-facing notification texts.
const (
	TimeoutMessage = "Request timeout. Please try again."
	GenericMessage = "An error occurred"
)

// StatusError is a non-2xx response.
type StatusError struct {
	Code    int
	Message string
	// Data is the parsed response body.
	Data any
}

func (e *StatusError) Error() string {
	return e.Message
}

// statusMessage picks the message for a failed response: the body's
// "error" field, then "message", then a generic text.
func statusMessage(code int, data any) string {
	if body, ok := data.(map[string]any); ok {
		for _, field := range []string{"error", "message"} {
			if s, ok := body[field].(string); ok && s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("Request failed with status %d", code)
}
