package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUserNotFound marks a 404 on the user detail resource so callers can
// distinguish "no such user" from transport failures.
var ErrUserNotFound = errors.New("user not found")

// Maximum error body read to avoid unbounded allocation on broken responses.
const maxErrorBodyBytes = 64 * 1024

// Error is a non-2xx backend response. Message carries the server-supplied
// `error` field when the response body had one.
type Error struct {
	StatusCode int
	Message    string
}

// Error returns the server message when present, otherwise a generic status
// description.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// newStatusError builds an Error from a non-2xx response, extracting the
// optional JSON `error` field from the body.
func newStatusError(resp *http.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodyBytes)).Decode(&body); err == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}
