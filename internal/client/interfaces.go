// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/kundelik/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client. *tui.TUI satisfies it.
type UI interface {
	// AuthFlow blocks until the user is logged in or chose offline mode.
	AuthFlow(ctx context.Context) (tui.AuthResult, error)

	// Dashboard blocks until the user leaves the tracker screen.
	Dashboard(ctx context.Context) (tui.Exit, error)
}
