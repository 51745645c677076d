// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/app"
	"github.com/MKhiriev/kundelik/internal/config"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/mock"
	"github.com/MKhiriev/kundelik/internal/service"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/models"
)

func newTestServices(t *testing.T, offline bool) (*service.ClientServices, *mock.MockServerAdapter) {
	t.Helper()

	cfg := &config.ClientConfig{
		App:     config.ClientApp{OfflineMode: offline},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: store.MemoryDSN}},
	}
	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	server := mock.NewMockServerAdapter(gomock.NewController(t))
	services := service.NewClientServices(storages, server, cfg, logger.Nop())
	t.Cleanup(services.Close)

	return services, server
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

// execCmd выполняет команду синхронно и передаёт результат обратно в модель.
func execCmd(t *testing.T, m tea.Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return m.Update(cmd())
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ── menu / root ──────────────────────────────────────────────────────────────

func TestMenuModel_OfflineEntry(t *testing.T) {
	assert.Len(t, NewMenuModel(false).items, 2)

	m := NewMenuModel(true)
	require.Len(t, m.items, 3)

	m.Update(keyDown)
	m.Update(keyDown)
	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, AuthResult{Offline: true}, cmd())
}

func TestMenuModel_NoticeShownOnce(t *testing.T) {
	m := NewMenuModel(false).WithNotice(app.MsgUnauthorized)

	cmd := m.Init()
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())
	assert.Contains(t, m.View(), app.MsgUnauthorized)

	// Повторный Init не показывает уведомление снова.
	assert.Nil(t, m.Init())
}

func TestRootModel_Navigation(t *testing.T) {
	services, _ := newTestServices(t, false)
	login := NewLoginModel(context.Background(), services.AuthService)
	root := NewRootModel(map[string]tea.Model{
		"menu":  NewMenuModel(false),
		"login": login,
	}, "menu", models.NewAppBuildInfo("1.0.0", "", ""))

	next, _ := root.Update(NavigateTo{Page: "login"})
	root = next.(RootModel)
	assert.Same(t, login, root.current)

	next, _ = root.Update(NavigateTo{Page: "nowhere"})
	assert.Same(t, login, next.(RootModel).current)
}

func TestRootModel_AuthResult(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"menu": NewMenuModel(true)}, "menu", models.AppBuildInfo{})

	next, cmd := root.Update(AuthResult{Offline: true})
	assert.True(t, isQuit(cmd))
	assert.True(t, next.(RootModel).result.Offline)
}

func TestRootModel_CtrlC(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"menu": NewMenuModel(false)}, "menu", models.AppBuildInfo{})

	next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.True(t, next.(RootModel).quitByUser)
}

func TestRootModel_BuildInfo(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"menu": NewMenuModel(false)}, "menu", models.NewAppBuildInfo("1.2.3", "", "abc"))

	next, _ := root.Update(keyRunes("v"))
	view := next.(RootModel).View()
	assert.Contains(t, view, "Kündelik")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "N/A")

	next, _ = next.Update(keyEsc)
	assert.False(t, next.(RootModel).showBuildInfo)
}

// ── login / register ─────────────────────────────────────────────────────────

func TestLoginModel_Success(t *testing.T) {
	services, server := newTestServices(t, false)
	user := models.User{ID: 7, Username: "aru", Email: "aru@example.kz"}
	server.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "aru@example.kz", Password: "secret1"}).
		Return(models.AuthResponse{AccessToken: "jwt", User: user}, nil)

	m := NewLoginModel(context.Background(), services.AuthService)
	m.Update(keyRunes("aru@example.kz"))
	m.Update(keyTab)
	m.Update(keyRunes("secret1"))

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := cmd()
	assert.Equal(t, AuthResult{User: user}, msg)
	assert.True(t, services.AuthService.Session().IsAuthenticated())
}

func TestLoginModel_InvalidCredentials(t *testing.T) {
	services, server := newTestServices(t, false)
	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, adapter.ErrUnauthorized)

	m := NewLoginModel(context.Background(), services.AuthService)
	m.Update(keyRunes("aru@example.kz"))
	m.Update(keyTab)
	m.Update(keyRunes("wrong1"))

	_, cmd := m.Update(keyEnter)
	execCmd(t, m, cmd)

	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgInvalidCredentials, m.errMsg)
	assert.Contains(t, m.View(), app.MsgInvalidCredentials)
}

func TestRegisterModel_PasswordsMismatch(t *testing.T) {
	services, _ := newTestServices(t, false)

	m := NewRegisterModel(context.Background(), services.AuthService)
	m.Update(keyRunes("aru"))
	m.Update(keyTab)
	m.Update(keyRunes("aru@example.kz"))
	m.Update(keyTab)
	m.Update(keyRunes("secret1"))
	m.Update(keyTab)
	m.Update(keyRunes("secret2"))

	_, cmd := m.Update(keyEnter)
	execCmd(t, m, cmd)

	assert.Equal(t, app.MsgPasswordsMismatch, m.errMsg)
}

func TestRegisterModel_EscReturnsToMenu(t *testing.T) {
	services, _ := newTestServices(t, false)
	m := NewRegisterModel(context.Background(), services.AuthService)

	_, cmd := m.Update(keyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "menu"}, cmd())
}
