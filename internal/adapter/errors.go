// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrTransport wraps every failure that prevented a response from being
	// received: refused connections, timeouts, cancelled contexts.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse is returned when a 2xx response body cannot be
	// decoded or lacks required fields.
	ErrMalformedResponse = errors.New("malformed server response")
)
