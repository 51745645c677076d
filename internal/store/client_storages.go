package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/kundelik/internal/config"
	"github.com/MKhiriev/kundelik/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Blobs holds the device-local tracker blobs.
	Blobs BlobStore
	// Session is the process-wide Session Store persisted in Blobs.
	Session SessionStore
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens the blob store: an in-memory one for the ":memory:" DSN,
//     otherwise an SQLite database at cfg.DB.DSN, creating the file if it
//     does not yet exist, and runs pending migrations via [DB.Migrate].
//  2. Restores the persisted session into a new [SessionStore].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	var blobs BlobStore
	if cfg.DB.DSN == MemoryDSN {
		blobs = NewMemoryBlobStore()
	} else {
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		blobs = NewSQLiteBlobStore(db, logger)
	}

	session, err := NewSessionStore(ctx, blobs, logger)
	if err != nil {
		return nil, errors.Join(err, blobs.Close())
	}

	return &ClientStorages{
		Blobs:   blobs,
		Session: session,
	}, nil
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	return s.Blobs.Close()
}
