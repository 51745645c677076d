// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/models"
)

type nutritionService struct {
	*syncController[models.NutritionDay]
	server adapter.ServerAdapter
}

// NewNutritionService creates the nutrition tracker. A failed meal update
// reloads the day from the server; a successful one is not followed by a
// refetch.
func NewNutritionService(cfg TrackerConfig, server adapter.ServerAdapter) NutritionService {
	s := &nutritionService{server: server}
	s.syncController = newSyncController(cfg, entity[models.NutritionDay]{
		name:    "nutrition",
		initial: models.NewNutritionDay,
		clone:   models.NutritionDay.Clone,
		zero:    models.NutritionDay.Cleared,
		fetch: func(ctx context.Context) (models.NutritionDay, error) {
			resp, err := server.FetchNutrition(ctx)
			if err != nil {
				return models.NutritionDay{}, err
			}
			return models.NutritionDayFromAPI(resp), nil
		},
		resetRemote: server.ResetNutrition,
		local: localBlob[models.NutritionDay, models.LocalNutritionDay]{
			blob: store.NewJSONBlob[models.LocalNutritionDay](cfg.Blobs, store.KeyNutritionTracker),
			to:   models.NutritionDay.ToLocal,
			from: models.NutritionDayFromLocal,
		},
	})
	return s
}

// Update sets one field of a meal from user input. Calories must be a
// non-negative integer; time is "HH:MM" and is sent as a full timestamp of
// the current local day.
func (s *nutritionService) Update(ctx context.Context, mealID int64, field models.MealField, value string) (models.NutritionDay, error) {
	return s.mutate(ctx, mutation[models.NutritionDay]{
		op: "update_meal",
		apply: func(cur models.NutritionDay) (models.NutritionDay, error) {
			idx := cur.MealIndex(mealID)
			if idx < 0 {
				return cur, fmt.Errorf("%w: unknown meal %d", ErrInvalidInput, mealID)
			}

			switch field {
			case models.MealFieldCalories:
				kcal, err := strconv.Atoi(strings.TrimSpace(value))
				if err != nil || kcal < 0 {
					return cur, fmt.Errorf("%w: calories %q", ErrInvalidInput, value)
				}
				cur.Meals[idx].Calories = kcal
			case models.MealFieldTime:
				at, err := s.timeOfToday(value)
				if err != nil {
					return cur, err
				}
				cur.Meals[idx].Time = &at
			default:
				return cur, fmt.Errorf("%w: unknown meal field %q", ErrInvalidInput, field)
			}

			cur.Recalculate()
			return cur, nil
		},
		remote: func(ctx context.Context, next models.NutritionDay) error {
			meal := next.Meals[next.MealIndex(mealID)]
			req := models.UpdateMealRequest{MealID: mealID}
			if field == models.MealFieldCalories {
				req.Calories = &meal.Calories
			} else {
				req.Time = meal.Time
			}
			return s.server.UpdateMeal(ctx, req)
		},
		policy: PolicyRevert,
	})
}

func (s *nutritionService) timeOfToday(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty meal time", ErrInvalidInput)
	}
	clock, err := time.Parse(models.MealTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: meal time %q: %w", ErrInvalidInput, value, err)
	}

	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}
