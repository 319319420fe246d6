// Package store persists the client session on the local device.
//
// The session lives in a small key/value table: the access token, the
// refresh token and the JSON-encoded last known user are stored under fixed
// keys. [SessionRepository] is implemented over SQLite for normal runs and
// in memory for tests and ephemeral runs.
package store

import (
	"context"

	"github.com/MKhiriev/go-recovery-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository is durable storage for the client session.
//
// Implementations must be safe for concurrent use. Readers always observe the
// latest committed value.
type SessionRepository interface {
	// LoadTokens returns the stored token pair, or [ErrSessionNotFound] when
	// no token is stored.
	LoadTokens(ctx context.Context) (models.Session, error)

	// SaveTokens replaces both stored tokens atomically.
	SaveTokens(ctx context.Context, session models.Session) error

	// ClearTokens removes both stored tokens. Clearing an empty store is not
	// an error.
	ClearTokens(ctx context.Context) error

	// LoadUser returns the last known signed-in user, or
	// [ErrSessionNotFound] when none is stored.
	LoadUser(ctx context.Context) (models.User, error)

	// SaveUser replaces the stored user.
	SaveUser(ctx context.Context, user models.User) error

	// ClearUser removes the stored user.
	ClearUser(ctx context.Context) error
}
