// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Host == "" {
		return fmt.Errorf("%w: malformed address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Adapter.RateLimit < 0 || cfg.Adapter.RetryWait < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
