package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kundelik/internal/app"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/service"
	"github.com/MKhiriev/kundelik/models"
)

// Exit tells the caller why the dashboard was closed.
type Exit int

const (
	// ExitQuit ends the program.
	ExitQuit Exit = iota
	// ExitLogout asks the caller to clear the session and show the auth flow.
	ExitLogout
	// ExitReauth is used when the server rejected the session.
	ExitReauth
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	offline   bool
	logger    *logger.Logger

	// notice is shown on the next start menu.
	notice string

	programOpts []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, offline bool, logger *logger.Logger) *TUI {
	return &TUI{
		services:    services,
		buildInfo:   buildInfo,
		offline:     offline,
		logger:      logger,
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// AuthFlow shows the start menu until the user logs in, registers or, when
// offline mode is enabled, chooses to continue without an account.
func (t *TUI) AuthFlow(ctx context.Context) (AuthResult, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(t.offline).WithNotice(t.notice),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	t.notice = ""

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, t.options(ctx)...).Run()
	if runErr != nil {
		return AuthResult{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return AuthResult{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return AuthResult{}, ErrUserQuit
	}

	t.logger.Info().Bool("offline", result.result.Offline).Int64("user_id", result.result.User.ID).Msg("auth flow finished")
	return result.result, nil
}

// Dashboard runs the tracker screen until the user quits or logs out.
func (t *TUI) Dashboard(ctx context.Context) (Exit, error) {
	model := NewDashboardModel(ctx, t.services, t.offline)
	finalModel, runErr := tea.NewProgram(model, t.options(ctx)...).Run()
	if runErr != nil {
		return ExitQuit, runErr
	}

	result, ok := finalModel.(*DashboardModel)
	if !ok {
		return ExitQuit, tea.ErrProgramKilled
	}
	if result.exit == ExitReauth {
		t.notice = app.MsgUnauthorized
	}
	return result.exit, nil
}

func (t *TUI) options(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOpts...)
}
