package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-recovery-companion/internal/mock"
	"github.com/MKhiriev/go-recovery-companion/internal/service"
	"github.com/MKhiriev/go-recovery-companion/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) (RootModel, *LoginModel, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	login := NewLoginModel(context.Background(), auth)
	root := NewRootModel(map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: login,
	}, pageMenu, models.NewAppBuildInfo("v1.2.3", "", ""))

	return root, login, auth
}

func updateRoot(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestLogin_RequiresBothFields(t *testing.T) {
	_, login, _ := newTestRoot(t)
	login.inputs[0].SetValue("   ")
	login.inputs[1].SetValue("pw")

	_, cmd := login.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, login.submitting)
	assert.Equal(t, "Логин и пароль обязательны", login.errMsg)
}

func TestLogin_SuccessFinishesFlow(t *testing.T) {
	root, login, auth := newTestRoot(t)

	root, _ = updateRoot(t, root, NavigateTo{Page: pageLogin})
	assert.Contains(t, root.View(), "ВХОД")

	login.inputs[0].SetValue(" doctor1 ")
	login.inputs[1].SetValue("pw")

	root, cmd := updateRoot(t, root, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, login.submitting)

	user := models.User{ID: 2, Username: "doctor1", Role: models.RoleDoctor}
	auth.EXPECT().Login(gomock.Any(), "doctor1", "pw").Return(user, nil)

	root, cmd = updateRoot(t, root, cmd())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, user, root.resultUser)
	assert.False(t, root.quitByUser)
}

func TestLogin_WrongPassword(t *testing.T) {
	root, login, auth := newTestRoot(t)
	root, _ = updateRoot(t, root, NavigateTo{Page: pageLogin})

	login.inputs[0].SetValue("doctor1")
	login.inputs[1].SetValue("nope")

	root, cmd := updateRoot(t, root, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	auth.EXPECT().Login(gomock.Any(), "doctor1", "nope").Return(models.User{}, fmt.Errorf("%w: bad", service.ErrWrongPassword))

	root, cmd = updateRoot(t, root, cmd())
	assert.Nil(t, cmd)
	assert.False(t, login.submitting)
	assert.Contains(t, root.View(), "Неверный логин или пароль")
}

func TestRoot_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot(t)

	root, cmd := updateRoot(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, root.quitByUser)
	assert.True(t, isQuit(cmd))
}

func TestRoot_MenuExit(t *testing.T) {
	root, _, _ := newTestRoot(t)

	root, _ = updateRoot(t, root, tea.KeyMsg{Type: tea.KeyDown})
	root, cmd := updateRoot(t, root, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	root, cmd = updateRoot(t, root, cmd())
	assert.True(t, root.quitByUser)
	assert.True(t, isQuit(cmd))
}

func TestRoot_BuildInfo(t *testing.T) {
	root, _, _ := newTestRoot(t)

	root, _ = updateRoot(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	view := root.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "Дата: N/A")

	root, _ = updateRoot(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, root.View(), "ГЛАВНОЕ МЕНЮ")
}
