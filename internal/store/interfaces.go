// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/kundelik/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStore is a key/value store of opaque byte blobs kept on the device.
//
// Implementations must be safe for concurrent use. PutMany and Delete are
// atomic: either every key is written (removed) or none is.
type BlobStore interface {
	// Get returns the blob stored under key. ok is false when the key is
	// absent; this is not an error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put creates or replaces the blob under key.
	Put(ctx context.Context, key string, value []byte) error

	// PutMany creates or replaces all given blobs in one atomic write.
	PutMany(ctx context.Context, blobs map[string][]byte) error

	// Delete removes all given keys in one atomic write. Missing keys are
	// ignored.
	Delete(ctx context.Context, keys ...string) error

	// Close releases the underlying resources.
	Close() error
}

// SessionStore holds the current authentication token and user identity.
//
// The token and the user are always replaced together. Any number of
// goroutines may call Current concurrently with one writer.
type SessionStore interface {
	// Establish persists token and user atomically and makes them the
	// current session. Both must be present.
	Establish(ctx context.Context, token string, user models.User) error

	// Current returns the current session, or the zero (unauthenticated)
	// session. It never fails.
	Current() models.Session

	// Clear removes both the token and the user.
	Clear(ctx context.Context) error

	// Restore reloads the persisted pair. A missing or malformed record
	// yields an unauthenticated session, not an error.
	Restore(ctx context.Context) error
}
