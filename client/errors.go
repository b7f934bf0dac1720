package client

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	// Message is the structured {message} body when the server sent one,
	// otherwise the HTTP status text.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

type errBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// apiErr collapses a resty response into one error value. Priority for the
// user-facing message: structured server message, then HTTP status text; a
// transport failure surfaces as-is.
func apiErr(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp == nil || !resp.IsError() {
		return nil
	}
	e := &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
	var body errBody
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil {
		if body.Message != "" {
			e.Message = body.Message
		} else if body.Error != "" {
			e.Message = body.Error
		}
	}
	return e
}
