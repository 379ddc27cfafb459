package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrUnreachable marks transport-level failures: the remote CampusShare
// service could not be reached at all.
var ErrUnreachable = errors.New("could not reach the server")

const ConnectionErrorText = "Connection Error: Could not reach the server. Is it running?"

// StatusError is an application-level error: the remote service answered
// with a non-2xx status. Message is the server-provided error text when the
// body decoded, otherwise a generic status line.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func NewStatusError(code int, message string) *StatusError {
	if message == "" {
		message = fmt.Sprintf("HTTP error! Status: %d", code)
	}
	return &StatusError{Code: code, Message: message}
}

// UserMessage maps an error to the text shown in the toast.
func UserMessage(err error) string {
	if errors.Is(err, ErrUnreachable) {
		return ConnectionErrorText
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// StatusOf picks the HTTP status the frontend answers with for err.
func StatusOf(err error) int {
	if errors.Is(err, ErrUnreachable) {
		return http.StatusBadGateway
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return http.StatusInternalServerError
}
