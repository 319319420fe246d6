// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import "errors"

// Sentinel errors used by the handlers and the authentication middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidCredentials is returned by login for an unknown username or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefreshToken is returned for an unknown, used or expired
	// refresh token.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrTokenExpiredOrInvalid is returned for an access token that fails
	// signature, issuer or expiry checks, or has been revoked.
	ErrTokenExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTaskNotFound is returned when a checklist task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoPatientRecord is returned when the signed-in account has no
	// patient record.
	ErrNoPatientRecord = errors.New("no patient record for account")
)
