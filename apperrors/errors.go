package apperrors

import (
	"errors"
	"net/http"
)

// ErrMethodNotImplemented is returned by the Unimplemented* repository stubs.
// Seeing it at runtime means a concrete repository is missing an override;
// production wiring must never hit it.
var ErrMethodNotImplemented = errors.New("METHOD_NOT_IMPLEMENTED")

// ClientError is an error the caller can act on. Status carries the HTTP
// status the outward-facing layer should respond with.
type ClientError struct {
	Status  int
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// NewInvariantError reports a payload that violates a domain invariant.
func NewInvariantError(message string) *ClientError {
	return &ClientError{Status: http.StatusBadRequest, Message: message}
}

// NewAuthenticationError reports failed credential or token verification.
func NewAuthenticationError(message string) *ClientError {
	return &ClientError{Status: http.StatusUnauthorized, Message: message}
}

// NewAuthorizationError reports an acting user that does not own the resource.
func NewAuthorizationError(message string) *ClientError {
	return &ClientError{Status: http.StatusForbidden, Message: message}
}

// NewNotFoundError reports a referenced resource that does not exist or does
// not belong to the claimed parent.
func NewNotFoundError(message string) *ClientError {
	return &ClientError{Status: http.StatusNotFound, Message: message}
}

// AsClientError unwraps err into a ClientError if it is one.
func AsClientError(err error) (*ClientError, bool) {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr, true
	}
	return nil, false
}
