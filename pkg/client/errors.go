package client

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response. Message carries the server's own error
// text when the body had one, so callers can show it verbatim.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("client: api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("client: api error %d", e.StatusCode)
}

// HTTPStatus exposes the response status for error classification.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// ServerMessage exposes the server's error text, empty when none was sent.
func (e *APIError) ServerMessage() string {
	return e.Message
}

// newAPIError extracts the error body shape the API uses: either
// {"error": "..."} or {"detail": "..."}, optionally with a per-field map
// under "errors".
func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Error  string            `json:"error"`
		Detail string            `json:"detail"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	apiErr.Message = body.Error
	if apiErr.Message == "" {
		apiErr.Message = body.Detail
	}
	apiErr.Fields = body.Errors
	return apiErr
}
