// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the authenticated client of the hospital REST API.
//
// [Client] owns the transport pipeline: it attaches the stored bearer token,
// maps HTTP failures to typed errors ([NetworkError], [AuthorizationError],
// [ServerError]) and, when the server rejects the access token, runs a single
// token refresh shared by every concurrently failing request before retrying
// each of them once.
//
// [ServerAdapter] exposes the typed endpoints the service layer uses. Error
// values are matched with [errors.Is] against the sentinels in errors.go
// (e.g. [ErrUnauthorized], [ErrNetwork], [ErrNotFound]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recovery-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the hospital API.
// Implementations are responsible for serialisation, session management and
// mapping transport-level errors to the error types of this package.
type ServerAdapter interface {
	// Login authenticates with username and password. On success the
	// returned token pair is stored as the current session. Authorization
	// failures of this call never trigger a token refresh.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Logout clears the stored session. No request is sent.
	Logout(ctx context.Context) error

	// Refresh renews the token pair with the stored refresh token.
	// Concurrent callers share one refresh request.
	Refresh(ctx context.Context) (models.RefreshResult, error)

	// Session returns the stored token pair, empty when signed out.
	Session(ctx context.Context) (models.Session, error)

	// SetSession stores a complete pair or clears the session.
	SetSession(ctx context.Context, session models.Session) error

	// IsValidToken reports whether token has an unexpired "exp" claim.
	IsValidToken(token string) bool

	// GetHome returns the patient dashboard.
	GetHome(ctx context.Context) (models.Home, error)

	// SetTaskStatus marks a recovery checklist task as completed or not.
	SetTaskStatus(ctx context.Context, taskID int64, completed bool) (models.Task, error)

	// GetMedications returns today's medication schedule.
	GetMedications(ctx context.Context) ([]models.Medication, error)

	// GetDietPlan returns the prescribed diet.
	GetDietPlan(ctx context.Context) (models.DietPlan, error)

	// GetActivities returns the allowed and restricted activities.
	GetActivities(ctx context.Context) (models.Activities, error)

	// GetProfile returns the patient profile.
	GetProfile(ctx context.Context) (models.Profile, error)

	// AskAI sends a question to the recovery assistant.
	AskAI(ctx context.Context, question string) (models.ChatAnswer, error)
}
