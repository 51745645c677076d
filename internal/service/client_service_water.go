// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/models"
)

type waterService struct {
	*syncController[models.WaterLog]
	server adapter.ServerAdapter
}

// NewWaterService creates the water tracker. Successful writes are followed
// by a refetch, so TotalIntake always ends up as reported by the server.
func NewWaterService(cfg TrackerConfig, server adapter.ServerAdapter) WaterService {
	s := &waterService{server: server}
	s.syncController = newSyncController(cfg, entity[models.WaterLog]{
		name:    "water",
		initial: models.NewWaterLog,
		clone:   models.WaterLog.Clone,
		zero: func(cur models.WaterLog) models.WaterLog {
			z := models.NewWaterLog()
			if cur.DailyGoal > 0 {
				z.DailyGoal = cur.DailyGoal
			}
			return z
		},
		fetch: func(ctx context.Context) (models.WaterLog, error) {
			resp, err := server.FetchWater(ctx)
			if err != nil {
				return models.WaterLog{}, err
			}
			return models.WaterLogFromAPI(resp), nil
		},
		resetRemote: server.ResetWater,
		local: localBlob[models.WaterLog, models.LocalWaterLog]{
			blob: store.NewJSONBlob[models.LocalWaterLog](cfg.Blobs, store.KeyWaterTracker),
			to:   models.WaterLog.ToLocal,
			from: models.WaterLogFromLocal,
		},
	})
	return s
}

// AddIntake records a drink of the amount typed by the user, in millilitres.
// Zero is accepted; negative and non-numeric input is rejected.
func (s *waterService) AddIntake(ctx context.Context, amount string) (models.WaterLog, error) {
	ml, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		return s.mutate(ctx, s.rejected(fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, amount)))
	}
	return s.AddPreset(ctx, ml)
}

// AddPreset records a drink of ml millilitres.
func (s *waterService) AddPreset(ctx context.Context, ml int) (models.WaterLog, error) {
	return s.mutate(ctx, mutation[models.WaterLog]{
		op: "add_intake",
		apply: func(cur models.WaterLog) (models.WaterLog, error) {
			if ml < 0 {
				return cur, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
			}
			cur.TotalIntake += ml
			cur.History = append(cur.History, models.WaterEntry{Timestamp: s.now(), AmountMl: ml})
			return cur, nil
		},
		remote: func(ctx context.Context, _ models.WaterLog) error {
			_, err := s.server.AddWater(ctx, models.AddWaterRequest{Amount: ml})
			return err
		},
		policy: PolicyRefetch,
	})
}

func (s *waterService) rejected(err error) mutation[models.WaterLog] {
	return mutation[models.WaterLog]{
		op:    "add_intake",
		apply: func(cur models.WaterLog) (models.WaterLog, error) { return cur, err },
	}
}
