// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the
// structured config.
type ClientApp struct {
	// OfflineMode enables device-local persistence while unauthenticated.
	OfflineMode bool
	// Version is the semantic version reported by the client.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryCount is the retry budget of idempotent requests.
	RetryCount int
	// RetryWait is the initial back-off between retries.
	RetryWait time.Duration
	// RateLimit is the allowed number of outbound requests per second.
	RateLimit float64
	// RateBurst is the burst size of the rate limiter.
	RateBurst int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the tracker refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.Client()
	return clientCfg, clientCfg.validate()
}

// Client maps the structured configuration onto the client view.
func (cfg *StructuredConfig) Client() *ClientConfig {
	offline := DefaultOfflineMode
	if cfg.App.OfflineMode != nil {
		offline = *cfg.App.OfflineMode
	}

	return &ClientConfig{
		App: ClientApp{
			OfflineMode: offline,
			Version:     cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     max(cfg.Adapter.RetryCount, 0),
			RetryWait:      cfg.Adapter.RetryWait,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
