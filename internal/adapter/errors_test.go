package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("home: %w", &NetworkError{Op: "GET /patients/home/", Err: cause})

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "GET /patients/home/")
}

func TestAuthorizationError_Is(t *testing.T) {
	unauthorized := &AuthorizationError{StatusCode: http.StatusUnauthorized, Message: "token expired"}
	assert.ErrorIs(t, unauthorized, ErrUnauthorized)
	assert.NotErrorIs(t, unauthorized, ErrForbidden)
	assert.Equal(t, "client unauthorized: token expired", unauthorized.Error())

	forbidden := &AuthorizationError{StatusCode: http.StatusForbidden}
	assert.ErrorIs(t, forbidden, ErrUnauthorized)
	assert.ErrorIs(t, forbidden, ErrForbidden)
	assert.Equal(t, "client unauthorized: authorization failed", forbidden.Error())

	wrapped := &AuthorizationError{Message: "session expired", Err: ErrNoRefreshToken}
	assert.ErrorIs(t, wrapped, ErrNoRefreshToken)
	assert.Contains(t, wrapped.Error(), ErrNoRefreshToken.Error())
}

func TestServerError_Is(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := &ServerError{StatusCode: tt.status}
			assert.ErrorIs(t, err, tt.want)
			assert.NotErrorIs(t, err, ErrUnauthorized)
			assert.NotErrorIs(t, err, ErrNetwork)
		})
	}

	assert.NotErrorIs(t, &ServerError{StatusCode: http.StatusTeapot}, ErrBadRequest)
}

func TestMapHTTPError(t *testing.T) {
	assert.NoError(t, mapHTTPError(&Response{StatusCode: http.StatusOK}))
	assert.NoError(t, mapHTTPError(&Response{StatusCode: http.StatusNoContent}))

	err := mapHTTPError(&Response{StatusCode: http.StatusUnauthorized, Body: []byte(`{"message":"expired","errors":["a"]}`)})
	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "expired", authErr.Message)
	assert.Equal(t, []string{"a"}, authErr.Errors)

	err = mapHTTPError(&Response{StatusCode: http.StatusServiceUnavailable})
	var srvErr *ServerError
	assert.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "Service Unavailable", srvErr.Message)
}

func TestParseMessages(t *testing.T) {
	assert.Empty(t, parseMessages(nil).Text())
	assert.Empty(t, parseMessages([]byte(`["not","an","object"]`)).Text())
	assert.Empty(t, parseMessages([]byte(`{broken`)).Text())

	m := parseMessages([]byte(` {"detail":"d","message":"m","warnings":["w"]}`))
	assert.Equal(t, "d", m.Text())
	assert.Equal(t, []string{"w"}, m.Warnings)
}

func TestErrorMessages(t *testing.T) {
	assert.Nil(t, errorMessages(nil))
	assert.Nil(t, errorMessages(errors.New("plain")))
	assert.Equal(t, []string{"x"}, errorMessages(&ServerError{Errors: []string{"x"}}))
	assert.Equal(t, []string{"y"}, errorMessages(fmt.Errorf("wrap: %w", &AuthorizationError{Errors: []string{"y"}})))
}
