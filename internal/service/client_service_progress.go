// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/models"
)

type progressService struct {
	*syncController[models.ProgressRecord]
	server adapter.ServerAdapter

	// edits counts measurement edits; committed is the count the last
	// successful commit covered. They differ while drafts are unsent.
	edits     uint64
	committed uint64
}

// NewProgressService creates the progress tracker. Weight and measurement
// edits are local drafts until RecordEntry or CommitMeasurements sends them.
// Uncommitted measurements survive reloads.
func NewProgressService(cfg TrackerConfig, server adapter.ServerAdapter) ProgressService {
	s := &progressService{server: server}
	s.syncController = newSyncController(cfg, entity[models.ProgressRecord]{
		name:    "progress",
		initial: models.NewProgressRecord,
		clone:   models.ProgressRecord.Clone,
		zero:    func(models.ProgressRecord) models.ProgressRecord { return models.NewProgressRecord() },
		fetch: func(ctx context.Context) (models.ProgressRecord, error) {
			resp, err := server.FetchProgress(ctx)
			if err != nil {
				return models.ProgressRecord{}, err
			}
			return models.ProgressRecordFromAPI(resp), nil
		},
		resetRemote: server.ResetProgress,
		local: localBlob[models.ProgressRecord, models.LocalProgressRecord]{
			blob: store.NewJSONBlob[models.LocalProgressRecord](cfg.Blobs, store.KeyProgressTracker),
			to:   models.ProgressRecord.ToLocal,
			from: models.ProgressRecordFromLocal,
		},
		merge: func(cur, loaded models.ProgressRecord) models.ProgressRecord {
			if s.edits != s.committed {
				loaded.Measurements = cur.Measurements
			}
			return loaded
		},
	})
	return s
}

// SetCurrentWeight stores the typed current weight as a draft.
func (s *progressService) SetCurrentWeight(value string) (models.ProgressRecord, error) {
	return s.editWeight(value, func(p *models.ProgressRecord, kg float64) { p.CurrentWeight = kg })
}

// SetGoalWeight stores the typed goal weight as a draft.
func (s *progressService) SetGoalWeight(value string) (models.ProgressRecord, error) {
	return s.editWeight(value, func(p *models.ProgressRecord, kg float64) { p.GoalWeight = kg })
}

func (s *progressService) editWeight(value string, set func(p *models.ProgressRecord, kg float64)) (models.ProgressRecord, error) {
	return s.edit(func(cur models.ProgressRecord) (models.ProgressRecord, error) {
		kg, err := parseNonNegative(value)
		if err != nil {
			return cur, err
		}
		set(&cur, kg)
		return cur, nil
	})
}

// RecordEntry appends the current and goal weight to the history and sends
// both. Both must be positive.
func (s *progressService) RecordEntry(ctx context.Context) (models.ProgressRecord, error) {
	return s.mutate(ctx, mutation[models.ProgressRecord]{
		op: "record_entry",
		apply: func(cur models.ProgressRecord) (models.ProgressRecord, error) {
			if cur.CurrentWeight <= 0 || cur.GoalWeight <= 0 {
				return cur, fmt.Errorf("%w: current and goal weight must be positive", ErrInvalidInput)
			}
			cur.History = append(cur.History, models.ProgressEntry{
				Date:          s.now(),
				CurrentWeight: cur.CurrentWeight,
				GoalWeight:    cur.GoalWeight,
			})
			return cur, nil
		},
		remote: func(ctx context.Context, next models.ProgressRecord) error {
			return s.server.UpdateProgress(ctx, models.UpdateProgressRequest{
				CurrentWeight: &next.CurrentWeight,
				GoalWeight:    &next.GoalWeight,
				AddEntry:      true,
			})
		},
		policy: PolicyRefetch,
	})
}

// EditMeasurement stores a typed height or weight as a draft.
func (s *progressService) EditMeasurement(field models.MeasurementField, value string) (models.ProgressRecord, error) {
	return s.edit(func(cur models.ProgressRecord) (models.ProgressRecord, error) {
		v, err := parseNonNegative(value)
		if err != nil {
			return cur, err
		}
		switch field {
		case models.MeasurementHeight:
			cur.Measurements.HeightCm = v
		case models.MeasurementWeight:
			cur.Measurements.WeightKg = v
		default:
			return cur, fmt.Errorf("%w: unknown measurement %q", ErrInvalidInput, field)
		}
		s.edits++
		return cur, nil
	})
}

// CommitMeasurements sends the edited measurements. It is a no-op when
// nothing was edited since the last commit.
func (s *progressService) CommitMeasurements(ctx context.Context) (models.ProgressRecord, error) {
	sent, dirty := s.draftVersion()
	if !dirty {
		return s.Snapshot().Data, nil
	}

	data, err := s.mutate(ctx, mutation[models.ProgressRecord]{
		op:    "commit_measurements",
		apply: func(cur models.ProgressRecord) (models.ProgressRecord, error) { return cur, nil },
		remote: func(ctx context.Context, next models.ProgressRecord) error {
			return s.server.UpdateProgress(ctx, models.UpdateProgressRequest{
				Height: &next.Measurements.HeightCm,
				Weight: &next.Measurements.WeightKg,
			})
		},
		policy: PolicyRefetch,
	})
	if err == nil {
		s.mu.Lock()
		// edits made while the request was in flight stay unsent
		s.committed = max(s.committed, sent)
		s.mu.Unlock()
	}
	return data, err
}

// Reset clears the progress record and any uncommitted drafts.
func (s *progressService) Reset(ctx context.Context) (models.ProgressRecord, error) {
	data, err := s.syncController.Reset(ctx)
	if err == nil {
		s.mu.Lock()
		s.committed = s.edits
		s.mu.Unlock()
	}
	return data, err
}

// draftVersion returns the current edit count and whether it is unsent.
func (s *progressService) draftVersion() (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edits, s.edits != s.committed
}

func parseNonNegative(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a non-negative number", ErrInvalidInput, value)
	}
	return v, nil
}
