package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a request the server rejected. Message carries the server's
// own error text when the body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// newError builds an *Error from a non-2xx response, pulling the message
// from the backend's {"error": "..."} body when present.
func newError(resp *http.Response) *Error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	apiErr := &Error{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
