package appwrite

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aoradev/aora-go/internal/platform"
)

// Error is the platform's error payload, kept verbatim so callers still see
// the original message after wrapping.
type Error struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Type, e.Code, e.Message)
}

func decodeError(status int, body []byte) error {
	e := &Error{Code: status}
	if err := json.Unmarshal(body, e); err != nil {
		e.Message = string(body)
	}

	switch e.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", platform.ErrUnauthorized, e)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", platform.ErrNotFound, e)
	}
	return e
}
