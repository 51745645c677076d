package service

import (
	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/config"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/store"
)

type ClientServices struct {
	AuthService      ClientAuthService
	WaterService     WaterService
	SleepService     SleepService
	NutritionService NutritionService
	ProgressService  ProgressService
	Refresher        ClientRefresher
	RefreshJob       ClientRefreshJob
}

// NewClientServices wires every client service over the given storages and
// adapter.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, clientCfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	cfg := TrackerConfig{
		Session: storages.Session,
		Blobs:   storages.Blobs,
		Offline: clientCfg.App.OfflineMode,
		Logger:  logger,
	}

	water := NewWaterService(cfg, serverAdapter)
	sleep := NewSleepService(cfg, serverAdapter)
	nutrition := NewNutritionService(cfg, serverAdapter)
	progress := NewProgressService(cfg, serverAdapter)
	refresher := NewClientRefresher(logger, water, sleep, nutrition, progress)

	return &ClientServices{
		AuthService:      NewClientAuthService(storages.Session, serverAdapter, logger),
		WaterService:     water,
		SleepService:     sleep,
		NutritionService: nutrition,
		ProgressService:  progress,
		Refresher:        refresher,
		RefreshJob:       NewClientRefreshJob(refresher, storages.Session, clientCfg.Workers.RefreshInterval, logger),
	}
}

// Close stops the background job and disposes every tracker.
func (s *ClientServices) Close() {
	s.RefreshJob.Stop()
	s.WaterService.Close()
	s.SleepService.Close()
	s.NutritionService.Close()
	s.ProgressService.Close()
}
