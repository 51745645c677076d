// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/kundelik/internal/logger"
)

const (
	blobsTable      = "local_blobs"
	blobsKeyCol     = "key"
	blobsValueCol   = "value"
	blobsUpdatedCol = "updated_at"

	upsertBlobSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

type sqliteBlobStore struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
	now     func() time.Time
}

// NewSQLiteBlobStore returns a [BlobStore] backed by the local_blobs table
// of db. The schema must already be migrated.
func NewSQLiteBlobStore(db *DB, logger *logger.Logger) BlobStore {
	return &sqliteBlobStore{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *sqliteBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := s.builder.
		Select(blobsValueCol).
		From(blobsTable).
		Where(sq.Eq{blobsKeyCol: key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.Get").
			Str("key", key).
			Msg("failed to read local blob")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteBlobStore) Put(ctx context.Context, key string, value []byte) error {
	return s.PutMany(ctx, map[string][]byte{key: value})
}

func (s *sqliteBlobStore) PutMany(ctx context.Context, blobs map[string][]byte) error {
	if len(blobs) == 0 {
		return nil
	}

	now := s.now().UTC()
	insert := s.builder.
		Insert(blobsTable).
		Columns(blobsKeyCol, blobsValueCol, blobsUpdatedCol).
		Suffix(upsertBlobSuffix)
	for _, key := range slices.Sorted(maps.Keys(blobs)) {
		insert = insert.Values(key, blobs[key], now)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteBlobStore.PutMany").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.PutMany").
			Int("blobs", len(blobs)).
			Msg("failed to upsert local blobs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqliteBlobStore.PutMany").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteBlobStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := s.builder.
		Delete(blobsTable).
		Where(sq.Eq{blobsKeyCol: keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.Delete").
			Strs("keys", keys).
			Msg("failed to delete local blobs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteBlobStore) Close() error {
	return s.DB.Close()
}
