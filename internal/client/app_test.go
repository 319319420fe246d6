package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/mock"
	"github.com/MKhiriev/go-recovery-companion/internal/service"
	"github.com/MKhiriev/go-recovery-companion/internal/tui"
	"github.com/MKhiriev/go-recovery-companion/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	logins    []models.User
	loginErr  error
	loops     []bool
	loopUsers []models.User
	loginRuns int
}

func (f *fakeUI) LoginFlow(context.Context) (models.User, error) {
	f.loginRuns++
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	user := f.logins[0]
	f.logins = f.logins[1:]
	return user, nil
}

func (f *fakeUI) MainLoop(_ context.Context, user models.User) (bool, error) {
	f.loopUsers = append(f.loopUsers, user)
	logout := f.loops[0]
	f.loops = f.loops[1:]
	return logout, nil
}

type fakeWorkers struct {
	started, stopped int
}

func (f *fakeWorkers) Start(context.Context) { f.started++ }
func (f *fakeWorkers) Stop()                 { f.stopped++ }

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService, *fakeWorkers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	w := &fakeWorkers{}

	app, err := NewApp(&service.ClientServices{AuthService: auth}, ui, w, logger.Nop())
	require.NoError(t, err)
	return app, auth, w
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, &fakeWorkers{}, logger.Nop())
	assert.Error(t, err)
}

func TestRun_RestoredSessionSkipsLogin(t *testing.T) {
	ui := &fakeUI{loops: []bool{false}}
	app, auth, w := newTestApp(t, ui)

	user := models.User{ID: 1, Username: "patient1"}
	auth.EXPECT().RestoreSession(gomock.Any()).Return(user, nil)

	require.NoError(t, app.Run())
	assert.Zero(t, ui.loginRuns)
	assert.Equal(t, []models.User{user}, ui.loopUsers)
	assert.Equal(t, 1, w.started)
	assert.Equal(t, 1, w.stopped)
}

func TestRun_SignInWhenNotAuthenticated(t *testing.T) {
	user := models.User{ID: 2, Username: "doctor1"}
	ui := &fakeUI{logins: []models.User{user}, loops: []bool{false}}
	app, auth, _ := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, service.ErrNotAuthenticated)

	require.NoError(t, app.Run())
	assert.Equal(t, 1, ui.loginRuns)
	assert.Equal(t, []models.User{user}, ui.loopUsers)
}

func TestRun_LogoutStartsOver(t *testing.T) {
	first := models.User{ID: 1, Username: "patient1"}
	second := models.User{ID: 2, Username: "doctor1"}
	ui := &fakeUI{logins: []models.User{second}, loops: []bool{true, false}}
	app, auth, w := newTestApp(t, ui)

	gomock.InOrder(
		auth.EXPECT().RestoreSession(gomock.Any()).Return(first, nil),
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, service.ErrNotAuthenticated),
	)

	require.NoError(t, app.Run())
	assert.Equal(t, []models.User{first, second}, ui.loopUsers)
	assert.Equal(t, 2, w.started)
	assert.Equal(t, 2, w.stopped)
}

func TestRun_UserQuitOnLogin(t *testing.T) {
	ui := &fakeUI{loginErr: tui.ErrUserQuit}
	app, auth, w := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, service.ErrNotAuthenticated)

	require.NoError(t, app.Run())
	assert.Zero(t, w.started)
}

func TestRun_TransientRestoreFailure(t *testing.T) {
	ui := &fakeUI{}
	app, auth, _ := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, fmt.Errorf("%w: 503", service.ErrServiceUnavailable))

	err := app.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrServiceUnavailable)
	assert.Zero(t, ui.loginRuns)
}

func TestRun_LogoutFailure(t *testing.T) {
	ui := &fakeUI{loops: []bool{true}}
	app, auth, _ := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{ID: 1}, nil)
	auth.EXPECT().Logout(gomock.Any()).Return(errors.New("disk full"))

	err := app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRun_ContextCarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	ui := &fakeUI{loops: []bool{false}}

	app, err := NewApp(&service.ClientServices{AuthService: auth}, ui, &fakeWorkers{}, &logger.Logger{Logger: zerolog.New(&buf)})
	require.NoError(t, err)

	auth.EXPECT().RestoreSession(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.User, error) {
		logger.FromContext(ctx).Error().Msg("session table is locked")
		return models.User{ID: 1}, nil
	})

	require.NoError(t, app.Run())
	assert.Contains(t, buf.String(), "session table is locked")
}
