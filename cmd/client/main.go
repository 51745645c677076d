package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/client"
	"github.com/MKhiriev/kundelik/internal/config"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/service"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/internal/tui"
	"github.com/MKhiriev/kundelik/internal/workers"
	"github.com/MKhiriev/kundelik/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log, closeLog := logger.NewClientLogger("kundelik-client", os.Getenv("LOG_FILE"))
	defer func() { _ = closeLog() }()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() { _ = localStorage.Close() }()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, localStorage.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, buildInfo, cfg.App.OfflineMode, log)

	app := client.NewApp(services, ui, workers.NewWorkers(services.RefreshJob), log)
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
