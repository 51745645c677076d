// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// error kind. The adapter error stays in the chain for logging.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var kind error
	switch {
	case errors.Is(err, adapter.ErrTransport):
		kind = ErrNetworkFailure
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		kind = ErrUnauthorized
	case errors.Is(err, adapter.ErrBadRequest):
		kind = ErrInvalidInput
	default:
		// not found, conflict, 5xx and undecodable bodies
		kind = ErrServerFailure
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// UserMessage returns the localized text shown for err, or an empty string
// for nil.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRequiredFields):
		return app.MsgRequiredFields
	case errors.Is(err, ErrInvalidEmail):
		return app.MsgInvalidEmail
	case errors.Is(err, ErrPasswordTooShort):
		return app.MsgPasswordTooShort
	case errors.Is(err, ErrPasswordsMismatch):
		return app.MsgPasswordsMismatch
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrAccountExists):
		return app.MsgAccountExists
	case errors.Is(err, ErrNetworkFailure):
		return app.MsgNetworkFailure
	case errors.Is(err, ErrUnauthorized):
		return app.MsgUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return app.MsgInvalidInput
	case errors.Is(err, ErrAlreadyActive):
		return app.MsgAlreadyActive
	case errors.Is(err, ErrNoActiveSession):
		return app.MsgNoActiveSession
	case errors.Is(err, ErrServerFailure):
		return app.MsgServerFailure
	case errors.Is(err, ErrStorageFailure):
		return app.MsgStorageFailure
	case errors.Is(err, ErrControllerClosed):
		return app.MsgControllerClosed
	default:
		return app.MsgUnknownError
	}
}
