package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recovery-companion/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for signing in and out
// and for restoring the previous session on start-up.
type ClientAuthService interface {
	// Login authenticates with username and password, stores the issued
	// token pair and persists the returned user as the last known identity.
	// Returns ErrInvalidDataProvided for blank input and ErrWrongPassword
	// when the server rejects the credentials.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout clears the stored token pair and the stored user.
	Logout(ctx context.Context) error

	// RestoreSession returns the stored user when the stored session is still
	// usable. An expired access token is renewed once with the stored refresh
	// token. When no session can be restored the local session is cleared and
	// ErrNotAuthenticated is returned.
	RestoreSession(ctx context.Context) (models.User, error)

	// UpdateUser merges the non-zero fields of patch into the stored user,
	// persists the result and returns it.
	UpdateUser(ctx context.Context, patch models.User) (models.User, error)
}

// ClientPatientService defines the patient-facing read and write operations
// of the recovery companion. Every method forwards to the server adapter and
// maps its errors to the errors of this package.
type ClientPatientService interface {
	// Home returns the dashboard with today's checklist.
	Home(ctx context.Context) (models.Home, error)

	// SetTaskStatus marks a checklist task as completed or not.
	SetTaskStatus(ctx context.Context, taskID int64, completed bool) (models.Task, error)

	// Medications returns today's medication schedule.
	Medications(ctx context.Context) ([]models.Medication, error)

	// DietPlan returns the prescribed diet.
	DietPlan(ctx context.Context) (models.DietPlan, error)

	// Activities returns the allowed and restricted activities.
	Activities(ctx context.Context) (models.Activities, error)

	// Profile returns the patient profile.
	Profile(ctx context.Context) (models.Profile, error)

	// AskAI sends a question to the recovery assistant. Blank questions are
	// rejected with ErrEmptyQuestion without a request.
	AskAI(ctx context.Context, question string) (models.ChatAnswer, error)
}

// ClientTokenRefreshJob defines the contract for a background worker that
// renews the access token shortly before it expires, so foreground requests
// rarely meet a 401.
type ClientTokenRefreshJob interface {
	// Start launches the background goroutine. Every interval it inspects the
	// stored access token and refreshes the pair when the token expires within
	// leeway. Any previously running job is stopped first.
	Start(ctx context.Context, interval, leeway time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
