package notion

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// APIError is a non-2xx answer from the Notion API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("notion: %s (status %d): %s", e.Code, e.Status, e.Message)
}

func parseAPIError(status int, body []byte) *APIError {
	res := gjson.ParseBytes(body)
	msg := res.Get("message").String()
	if msg == "" {
		msg = string(body)
	}
	return &APIError{
		Status:  status,
		Code:    res.Get("code").String(),
		Message: msg,
	}
}
