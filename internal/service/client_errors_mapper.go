// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recovery-companion/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server's message, when there is one, is kept in the
// error text.
//
// Transient failures are checked first: a refresh that failed on the network
// or with a 5xx answer is reported as an authorization error, yet the session
// is still intact in that case.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if isTransient(err) {
		var srvErr *adapter.ServerError
		if errors.As(err, &srvErr) {
			return wrapMessage(ErrServiceUnavailable, srvErr.Message)
		}
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	msg := serverMessage(err)

	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return wrapMessage(ErrAccessDenied, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		return wrapMessage(ErrNotAuthenticated, msg)

	case errors.Is(err, adapter.ErrNotFound):
		return wrapMessage(ErrNotFound, msg)

	case errors.Is(err, adapter.ErrBadRequest):
		return wrapMessage(ErrInvalidDataProvided, msg)
	}

	return err
}

// isTransient reports whether err leaves the session intact and the call may
// succeed later: a network failure or a 5xx answer, possibly reported through
// a failed refresh.
func isTransient(err error) bool {
	if errors.Is(err, adapter.ErrNetwork) {
		return true
	}
	var srvErr *adapter.ServerError
	return errors.As(err, &srvErr) && srvErr.StatusCode >= 500
}

// serverMessage returns the human-readable message the server attached to
// err, if any.
func serverMessage(err error) string {
	var authErr *adapter.AuthorizationError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var srvErr *adapter.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Message
	}
	return ""
}

func wrapMessage(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
