// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/kundelik/internal/service"
)

// ErrUserQuit is returned by the flows when the user leaves the program.
var ErrUserQuit = errors.New("бағдарламадан шықты")

// humanizeError returns the localized text for err.
func humanizeError(err error) string {
	return service.UserMessage(err)
}
