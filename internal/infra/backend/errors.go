package backend

import (
	"fmt"

	"venue-booking-web/internal/pkg/errs"
)

// ErrRequestFailed marks transport failures: no HTTP response was received.
var ErrRequestFailed = errs.New("request failed")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Message string
	Status  int
	// Body is the decoded JSON payload, the raw text, or nil.
	Body any
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err to an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errs.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}

func newAPIError(status int, payload any) *APIError {
	return &APIError{
		Message: errorMessage(status, payload),
		Status:  status,
		Body:    payload,
	}
}

// errorMessage prefers the payload's message, then its error field.
func errorMessage(status int, payload any) string {
	if m, ok := payload.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if s := stringField(m[key]); s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("Request failed (%d)", status)
}

func stringField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		// {"error": {"message": "..."}}
		if msg, ok := t["message"].(string); ok {
			return msg
		}
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}
