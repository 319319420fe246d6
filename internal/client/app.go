package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/service"
	"github.com/MKhiriev/go-recovery-companion/internal/tui"
	"github.com/MKhiriev/go-recovery-companion/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || workers == nil {
		return nil, errors.New("client app requires services, ui and workers")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run restores the stored session or asks the user to sign in, then runs
// the main loop with the background workers. Signing out clears the
// session and starts over.
func (a *App) Run() error {
	// storage and services log through logger.FromContext
	ctx := a.logger.WithContext(context.Background())

	for {
		user, err := a.services.AuthService.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNotAuthenticated) {
				return fmt.Errorf("restore session: %w", err)
			}

			user, err = a.ui.LoginFlow(ctx)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.mainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Int64("user_id", user.ID).Msg("signed out")
	}
}

func (a *App) mainLoop(ctx context.Context, user models.User) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.ui.MainLoop(ctx, user)
}
