package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/service"
	"github.com/MKhiriev/kundelik/internal/tui"
	"github.com/MKhiriev/kundelik/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp assembles the client runtime. bg is started while the dashboard is
// shown and stopped when it closes.
func NewApp(services *service.ClientServices, ui UI, bg *workers.Workers, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, workers: bg, logger: logger}
}

// Run implements Client. It returns nil when the user quits.
func (a *App) Run(ctx context.Context) error {
	defer a.services.Close()

	for {
		if !a.services.AuthService.Session().IsAuthenticated() {
			result, err := a.ui.AuthFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("auth flow: %w", err)
			}
			a.logger.Info().Bool("offline", result.Offline).Msg("starting dashboard")
		}

		a.workers.Run(ctx)
		exit, err := a.ui.Dashboard(ctx)
		a.workers.Stop()
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}

		switch exit {
		case tui.ExitLogout:
			if err = a.services.AuthService.Logout(ctx); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			a.logger.Info().Msg("logged out")
		case tui.ExitReauth:
			a.logger.Warn().Msg("session rejected by the server")
		default:
			return nil
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}
