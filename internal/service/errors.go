package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong username or password")
	ErrEmptyQuestion       = errors.New("question is empty")

	// ErrNotAuthenticated means the session is gone and the user has to
	// sign in again.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAccessDenied means the signed-in account may not perform the
	// operation.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound means the requested record does not exist on the server.
	ErrNotFound = errors.New("not found")

	// ErrServiceUnavailable covers network failures and 5xx answers. The
	// session is kept, so the operation may be retried later.
	ErrServiceUnavailable = errors.New("service unavailable")
)
