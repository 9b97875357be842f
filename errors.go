package dashboard

import (
	"encoding/json"
	"fmt"
)

// APIError is an error object reported by the API server in a response body.
// It is handed to callers exactly as the server sent it.
type APIError struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
}

// NewAPIError returns an APIError carrying only a message.
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// UnmarshalJSON accepts either an error object or a bare error string.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var message string
	if err := json.Unmarshal(data, &message); err == nil {
		*e = APIError{Message: message}
		return nil
	}
	type apiError APIError
	return json.Unmarshal(data, (*apiError)(e))
}

type ErrAuthentication struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("Could not authenticate the request: %s", e.Message)
}

type ErrAuthorization struct {
	Message string `json:"message"`
}

func (e *ErrAuthorization) Error() string {
	return "The request is not authorized."
}

type ErrBadRequest struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("Bad request: %s", e.Message)
}

type ErrNotFound struct {
	Message string `json:"message"`
}

func (e *ErrNotFound) Error() string {
	if e.Message == "" {
		return "Not found."
	}
	return fmt.Sprintf("Not found: %s", e.Message)
}

type ErrConflict struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("Conflict: %s", e.Message)
}

type ErrInternalServer struct {
	Message string `json:"message"`
}

func (e *ErrInternalServer) Error() string {
	return "An internal server error occurred."
}
