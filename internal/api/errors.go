package api

import "fmt"

const (
	ErrTypeNetwork     = "NETWORK_ERROR"
	ErrTypeServer      = "SERVER_ERROR"
	ErrTypeBadResponse = "BAD_RESPONSE"
	ErrTypeValidation  = "VALIDATION_ERROR"
)

// APIError is the single failure shape every request funnels into. Views and
// slices read it as data; it never carries transport internals.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Type    string `json:"type"`
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Type, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func NewNetworkError(err error) *APIError {
	return &APIError{Type: ErrTypeNetwork, Message: err.Error()}
}

func NewServerError(status int, message string) *APIError {
	if message == "" {
		message = "request failed"
	}
	return &APIError{Type: ErrTypeServer, Status: status, Message: message}
}

func NewBadResponseError(err error) *APIError {
	return &APIError{Type: ErrTypeBadResponse, Message: err.Error()}
}

func NewValidationError(message string) *APIError {
	return &APIError{Type: ErrTypeValidation, Message: message}
}

// AsAPIError returns err as an *APIError, wrapping unknown errors as network
// failures so callers always see the normalized shape.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewNetworkError(err)
}
