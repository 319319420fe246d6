package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recovery-companion/internal/adapter"
	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/store"
	"github.com/MKhiriev/go-recovery-companion/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

// NewClientAuthService creates a ClientAuthService that signs in through
// serverAdapter and keeps the last known user in sessions.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	auth, err := a.adapter.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		var authErr *adapter.AuthorizationError
		if errors.As(err, &authErr) && !errors.Is(err, adapter.ErrNetwork) {
			return models.User{}, wrapMessage(ErrWrongPassword, authErr.Message)
		}
		return models.User{}, mapAdapterError(err)
	}

	user := auth.User
	if user.Username == "" {
		user.Username = username
	}
	if err = a.sessions.SaveUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("save signed-in user: %w", err)
	}

	a.logger.Info().
		Str("func", "clientAuthService.Login").
		Int64("user_id", user.ID).
		Msg("user signed in")
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := a.sessions.ClearUser(ctx); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("user signed out")
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	log := a.logger

	user, err := a.sessions.LoadUser(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) && !errors.Is(err, store.ErrCorruptedUser) {
			return models.User{}, fmt.Errorf("load user: %w", err)
		}
		log.Debug().Err(err).Str("func", "clientAuthService.RestoreSession").Msg("no stored user")
		return models.User{}, a.forget(ctx)
	}

	session, err := a.adapter.Session(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load session: %w", err)
	}
	if session.RefreshToken == "" {
		return models.User{}, a.forget(ctx)
	}

	if a.adapter.IsValidToken(session.AccessToken) {
		return user, nil
	}

	result, err := a.adapter.Refresh(ctx)
	if err != nil {
		if isTransient(err) {
			return models.User{}, mapAdapterError(err)
		}
		log.Info().Err(err).Str("func", "clientAuthService.RestoreSession").Msg("stored session expired")
		return models.User{}, a.forget(ctx)
	}

	if result.User != nil {
		user = user.Merge(models.User{Name: result.User.FullName, Role: models.UserRole(result.User.Role)})
		if err = a.sessions.SaveUser(ctx, user); err != nil {
			return models.User{}, fmt.Errorf("save refreshed user: %w", err)
		}
	}

	log.Info().Str("func", "clientAuthService.RestoreSession").Int64("user_id", user.ID).Msg("session restored")
	return user, nil
}

func (a *clientAuthService) UpdateUser(ctx context.Context, patch models.User) (models.User, error) {
	user, err := a.sessions.LoadUser(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.User{}, ErrNotAuthenticated
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	user = user.Merge(patch)
	if err = a.sessions.SaveUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

// forget clears whatever is left of the local session and reports the caller
// as signed out.
func (a *clientAuthService) forget(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := a.sessions.ClearUser(ctx); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	return ErrNotAuthenticated
}
