package web

import (
	"fmt"
	"net/http"

	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/pkg/errs"
)

// requestFailedMessage stands in for transport errors, whose text is not meant for users.
const requestFailedMessage = "Request failed. Check your connection and try again."

// ErrorMessage is the banner text for err: the backend's message and status for
// rejected requests, a generic text for transport failures, the error's own
// message otherwise.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		return fmt.Sprintf("%s (HTTP %d)", apiErr.Message, apiErr.Status)
	}
	if errs.Is(err, backend.ErrRequestFailed) {
		return requestFailedMessage
	}
	if errs.Is(err, errs.ErrRequiredField) {
		return errs.ErrRequiredField.Error()
	}
	return err.Error()
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.Is(err, errs.ErrRequiredField):
		return http.StatusBadRequest
	case errs.Is(err, backend.ErrRequestFailed):
		return http.StatusBadGateway
	}
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Status >= http.StatusBadRequest {
		return apiErr.Status
	}
	return http.StatusOK
}
