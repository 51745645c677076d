// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/models"
)

type sleepService struct {
	*syncController[models.SleepLog]
	server adapter.ServerAdapter
}

// NewSleepService creates the sleep tracker.
func NewSleepService(cfg TrackerConfig, server adapter.ServerAdapter) SleepService {
	s := &sleepService{server: server}
	s.syncController = newSyncController(cfg, entity[models.SleepLog]{
		name:    "sleep",
		initial: models.NewSleepLog,
		clone:   models.SleepLog.Clone,
		zero:    func(models.SleepLog) models.SleepLog { return models.NewSleepLog() },
		fetch: func(ctx context.Context) (models.SleepLog, error) {
			resp, err := server.FetchSleep(ctx)
			if err != nil {
				return models.SleepLog{}, err
			}
			return models.SleepLogFromAPI(resp), nil
		},
		resetRemote: server.ResetSleep,
		local: localBlob[models.SleepLog, models.LocalSleepLog]{
			blob: store.NewJSONBlob[models.LocalSleepLog](cfg.Blobs, store.KeySleepTracker),
			to:   models.SleepLog.ToLocal,
			from: models.SleepLogFromLocal,
		},
	})
	return s
}

// StartSleep opens a sleep session at the current time.
func (s *sleepService) StartSleep(ctx context.Context) (models.SleepLog, error) {
	return s.mutate(ctx, mutation[models.SleepLog]{
		op: "start_sleep",
		apply: func(cur models.SleepLog) (models.SleepLog, error) {
			if cur.IsActive() {
				return cur, ErrAlreadyActive
			}
			start := s.now()
			cur.ActiveStart = &start
			return cur, nil
		},
		remote: func(ctx context.Context, _ models.SleepLog) error {
			_, err := s.server.StartSleep(ctx)
			return err
		},
		policy: PolicyRefetch,
	})
}

// EndSleep closes the open session and appends it to the history. Without
// an open session nothing is sent.
func (s *sleepService) EndSleep(ctx context.Context) (models.SleepLog, error) {
	return s.mutate(ctx, mutation[models.SleepLog]{
		op: "end_sleep",
		apply: func(cur models.SleepLog) (models.SleepLog, error) {
			if !cur.IsActive() {
				return cur, ErrNoActiveSession
			}
			cur.History = append(cur.History, models.NewSleepEntry(*cur.ActiveStart, s.now()))
			cur.ActiveStart = nil
			return cur, nil
		},
		remote: func(ctx context.Context, _ models.SleepLog) error {
			return s.server.EndSleep(ctx)
		},
		policy: PolicyRefetch,
	})
}
