// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/models"
)

type sessionStore struct {
	mu      sync.RWMutex
	session models.Session

	blobs  BlobStore
	logger *logger.Logger
}

// NewSessionStore returns a [SessionStore] persisted in blobs and restores
// the previously established session, if any.
func NewSessionStore(ctx context.Context, blobs BlobStore, logger *logger.Logger) (SessionStore, error) {
	s := &sessionStore{blobs: blobs, logger: logger}
	if err := s.Restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sessionStore) Establish(ctx context.Context, token string, user models.User) error {
	if token == "" || user.IsZero() {
		return ErrIncompleteSession
	}

	rawToken, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.blobs.PutMany(ctx, map[string][]byte{KeyToken: rawToken, KeyUser: rawUser}); err != nil {
		s.logger.Err(err).Str("func", "sessionStore.Establish").Msg("failed to persist session")
		return fmt.Errorf("persist session: %w", err)
	}

	s.session = models.Session{Token: token, User: user}
	s.logger.Debug().Str("func", "sessionStore.Establish").Int64("user_id", user.ID).Msg("session established")
	return nil
}

func (s *sessionStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

func (s *sessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// the in-memory pair goes first so a failed delete never keeps a
	// rejected token in use
	s.session = models.Session{}

	if err := s.blobs.Delete(ctx, KeyToken, KeyUser); err != nil {
		s.logger.Err(err).Str("func", "sessionStore.Clear").Msg("failed to delete persisted session")
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Debug().Str("func", "sessionStore.Clear").Msg("session cleared")
	return nil
}

func (s *sessionStore) Restore(ctx context.Context) error {
	token, _, tokenErr := NewJSONBlob[string](s.blobs, KeyToken).Load(ctx)
	user, _, userErr := NewJSONBlob[models.User](s.blobs, KeyUser).Load(ctx)

	for _, err := range []error{tokenErr, userErr} {
		if err != nil && !errors.Is(err, ErrMalformedBlob) {
			return fmt.Errorf("restore session: %w", err)
		}
	}

	restored := models.Session{Token: token, User: user}
	if tokenErr != nil || userErr != nil {
		s.logger.Warn().
			AnErr("token_err", tokenErr).
			AnErr("user_err", userErr).
			Str("func", "sessionStore.Restore").
			Msg("persisted session is unreadable, starting unauthenticated")
		restored = models.Session{}
	}
	if !restored.IsAuthenticated() {
		restored = models.Session{}
	}

	s.mu.Lock()
	s.session = restored
	s.mu.Unlock()

	return nil
}
