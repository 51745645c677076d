// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ServerURL holds a validated absolute http(s) URL of the remote API.
// It implements the flag.Value interface.
type ServerURL struct {
	URL *url.URL
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a remote API base URL (e.g. http://127.0.0.1:5000/api)
//	-d local database DSN
//	-c/-config json file path with configs
//	-offline keep tracker state on the device while logged out
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-retry-count retries of idempotent requests
//	-retry-wait initial retry back-off (e.g., "200ms")
//	-rate-limit outbound requests per second
//	-rate-burst rate limiter burst size
//	-refresh-interval background refresh interval (e.g., "5m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress ServerURL
	var databaseDSN string
	var jsonConfigPath string
	var offlineMode bool
	var requestTimeout time.Duration
	var retryCount int
	var retryWait time.Duration
	var rateLimit float64
	var rateBurst int
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("kundelik", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Remote API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&offlineMode, "offline", DefaultOfflineMode, "Keep tracker state on the device while logged out")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.IntVar(&retryCount, "retry-count", 0, "Retries of idempotent requests")
	fs.DurationVar(&retryWait, "retry-wait", 0, "Initial retry back-off (e.g., 200ms)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst size")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
			RetryWait:      retryWait,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}

	// only an explicitly passed -offline overrides lower-priority sources
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "offline" {
			cfg.App.OfflineMode = &offlineMode
		}
	})

	return cfg, nil
}

// String returns the URL without a trailing slash, or an empty string when
// the flag was not set.
func (a *ServerURL) String() string {
	if a == nil || a.URL == nil {
		return ""
	}

	return strings.TrimRight(a.URL.String(), "/")
}

// Set parses an absolute http or https URL. A bare host:port is accepted
// and gets the http scheme.
func (a *ServerURL) Set(s string) error {
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need an http or https address")
	}

	if u.Host == "" {
		return errors.New("need address in a form `scheme://host:port/path`")
	}

	a.URL = u
	return nil
}
