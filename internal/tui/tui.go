package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/service"
	"github.com/MKhiriev/go-recovery-companion/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	notifier  *Notifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI over services. Server warnings and errors published to
// notifier are shown in the status line of the main loop.
func New(services *service.ClientServices, notifier *Notifier, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if notifier == nil {
		notifier = NewNotifier(defaultNoticeBuffer)
	}

	return &TUI{
		services:  services,
		notifier:  notifier,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// LoginFlow runs the sign-in screens until the user signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.resultUser.ID).Msg("signed in")
	return result.resultUser, nil
}

// MainLoop runs the tabbed patient screens for user. It reports logout when
// the user signed out or the session could not be kept alive.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	done := make(chan struct{})
	defer close(done)

	model := newMainLoopModel(ctx, t.services.PatientService, user, t.notifier.Notices(), done)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.sessionExpired {
		t.logger.Warn().Int64("user_id", user.ID).Msg("session expired, signing out")
	}
	return result.logout, nil
}
