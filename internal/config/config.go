// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// kundelik client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as offline mode and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local blob database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API address, timeouts, retry and rate-limit
	// settings of the HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// OfflineMode enables device-local persistence of tracker state while no
	// session is established. A pointer so that an explicit false survives
	// merging with the defaults.
	// Env: APP_OFFLINE_MODE
	OfflineMode *bool `env:"OFFLINE_MODE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path, or ":memory:" for a process-local
	// in-memory store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the outbound HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API including its path
	// prefix (e.g. "http://127.0.0.1:5000/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times an idempotent GET is retried after a
	// transport error or a 5xx response. Negative disables retries.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWait is the initial back-off between retries.
	// Env: ADAPTER_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`

	// RateLimit is the number of outbound requests allowed per second.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size of the rate limiter.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the refresh job reloads every tracker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Default values applied to every field no other source has set.
const (
	DefaultHTTPAddress     = "http://127.0.0.1:5000/api"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRetryCount      = 2
	DefaultRetryWait       = 200 * time.Millisecond
	DefaultRateLimit       = 10
	DefaultRateBurst       = 5
	DefaultDSN             = "kundelik.db"
	DefaultRefreshInterval = 5 * time.Minute
	DefaultOfflineMode     = true
)

func defaultConfig() *StructuredConfig {
	offline := DefaultOfflineMode
	return &StructuredConfig{
		App: App{OfflineMode: &offline},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
			RetryWait:      DefaultRetryWait,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
	}
}

// GetStructuredConfig loads and merges the client configuration from all
// available sources. For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
