package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is matching. Typed errors below match them via
// their Is methods.
var (
	ErrNetwork             = errors.New("network error")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoRefreshToken is wrapped by the AuthorizationError returned when a
	// refresh is needed but no refresh token is stored.
	ErrNoRefreshToken = errors.New("no refresh token stored")

	// ErrMalformedRefreshResponse is wrapped by the AuthorizationError
	// returned when the refresh endpoint answers 2xx without an access token.
	ErrMalformedRefreshResponse = errors.New("malformed refresh response")
)

// NetworkError reports a request that never produced an HTTP response:
// connection failure, timeout or cancellation.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// AuthorizationError reports that the access token was rejected and could
// not be renewed. StatusCode is zero when no response was involved (for
// example when no refresh token is stored).
type AuthorizationError struct {
	StatusCode int
	Message    string
	Errors     []string
	Err        error

	// fromRefresh marks the shared outcome of a failed token refresh.
	fromRefresh bool
}

func (e *AuthorizationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "authorization failed"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrUnauthorized, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, msg)
}

func (e *AuthorizationError) Unwrap() error { return e.Err }

func (e *AuthorizationError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return true
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

// ServerError is any other non-2xx response.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     []string
	Body       []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *ServerError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == ErrBadRequest
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusConflict:
		return target == ErrConflict
	case http.StatusBadGateway:
		return target == ErrBadGateway
	case http.StatusInternalServerError:
		return target == ErrInternalServerError
	}
	return false
}

// errorMessages returns the per-entry messages carried by err, if it is an
// HTTP-level error.
func errorMessages(err error) []string {
	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		return authErr.Errors
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Errors
	}
	return nil
}
