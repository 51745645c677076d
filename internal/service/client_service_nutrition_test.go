// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/models"
)

func serverDay(calories ...int) models.NutritionResponse {
	resp := models.NutritionResponse{DailyGoal: 2000}
	for i, m := range models.DefaultMeals() {
		m.Calories = calories[i]
		resp.Meals = append(resp.Meals, models.MealItem{ID: m.ID, Name: m.Name, Calories: m.Calories})
	}
	return resp
}

func loadedNutrition(t *testing.T, f trackerFixture, calories ...int) NutritionService {
	t.Helper()
	svc := NewNutritionService(f.cfg, f.server)
	f.server.EXPECT().FetchNutrition(gomock.Any()).Return(serverDay(calories...), nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	return svc
}

func TestNutritionService_UpdateCalories(t *testing.T) {
	f := newTrackerFixture(t, true, false)
	svc := loadedNutrition(t, f, 300, 0, 0)

	kcal := 450
	// успешное обновление не перезагружает день
	f.server.EXPECT().UpdateMeal(gomock.Any(), models.UpdateMealRequest{MealID: 2, Calories: &kcal}).Return(nil)

	data, err := svc.Update(context.Background(), 2, models.MealFieldCalories, "450")
	require.NoError(t, err)
	assert.Equal(t, 450, data.Meals[1].Calories)
	assert.Equal(t, 750, data.TotalCalories)

	snap := svc.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.False(t, snap.Pending)
	assert.Equal(t, 750, snap.Data.TotalCalories)
}

func TestNutritionService_TotalMatchesMealsWhilePending(t *testing.T) {
	f := newTrackerFixture(t, true, false)
	svc := loadedNutrition(t, f, 300, 200, 0)

	f.server.EXPECT().UpdateMeal(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.UpdateMealRequest) error {
		snap := svc.Snapshot()
		assert.True(t, snap.Pending)
		sum := 0
		for _, m := range snap.Data.Meals {
			sum += m.Calories
		}
		assert.Equal(t, sum, snap.Data.TotalCalories)
		assert.Equal(t, 1000, snap.Data.TotalCalories)
		return nil
	})

	_, err := svc.Update(context.Background(), 3, models.MealFieldCalories, "500")
	require.NoError(t, err)
}

func TestNutritionService_FailedUpdateRestoresServerState(t *testing.T) {
	f := newTrackerFixture(t, true, false)
	svc := loadedNutrition(t, f, 300, 0, 0)

	gomock.InOrder(
		f.server.EXPECT().UpdateMeal(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: status 500", adapter.ErrInternalServerError)),
		f.server.EXPECT().FetchNutrition(gomock.Any()).Return(serverDay(300, 120, 0), nil),
	)

	data, err := svc.Update(context.Background(), 1, models.MealFieldCalories, "500")
	require.ErrorIs(t, err, ErrServerFailure)

	// оптимистичные 500 заменены данными сервера
	assert.Equal(t, 300, data.Meals[0].Calories)
	assert.Equal(t, 420, data.TotalCalories)

	snap := svc.Snapshot()
	assert.False(t, snap.Pending)
	assert.Equal(t, StatusReady, snap.Status)
	assert.ErrorIs(t, snap.Err, ErrServerFailure)
}

func TestNutritionService_FailedUpdateAndFailedReloadRevertsLocally(t *testing.T) {
	f := newTrackerFixture(t, true, false)
	svc := loadedNutrition(t, f, 300, 0, 0)

	gomock.InOrder(
		f.server.EXPECT().UpdateMeal(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: reset", adapter.ErrTransport)),
		f.server.EXPECT().FetchNutrition(gomock.Any()).Return(models.NutritionResponse{}, fmt.Errorf("%w: reset", adapter.ErrTransport)),
	)

	data, err := svc.Update(context.Background(), 1, models.MealFieldCalories, "500")
	require.ErrorIs(t, err, ErrNetworkFailure)
	assert.Equal(t, 300, data.Meals[0].Calories)
	assert.Equal(t, 300, data.TotalCalories)
	assert.False(t, svc.Snapshot().Pending)
}

func TestNutritionService_UpdateTime(t *testing.T) {
	f := newTrackerFixture(t, true, false)
	svc := loadedNutrition(t, f, 0, 0, 0)

	want := time.Date(2026, time.March, 14, 8, 5, 0, 0, time.Local)
	f.server.EXPECT().UpdateMeal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req models.UpdateMealRequest) error {
		assert.Equal(t, int64(1), req.MealID)
		assert.Nil(t, req.Calories)
		require.NotNil(t, req.Time)
		assert.True(t, want.Equal(*req.Time), "got %s", req.Time)
		return nil
	})

	data, err := svc.Update(context.Background(), 1, models.MealFieldTime, "08:05")
	require.NoError(t, err)
	require.NotNil(t, data.Meals[0].Time)
	assert.True(t, want.Equal(*data.Meals[0].Time))
}

func TestNutritionService_UpdateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		id    int64
		field models.MealField
		value string
	}{
		{name: "unknown meal", id: 42, field: models.MealFieldCalories, value: "100"},
		{name: "calories not a number", id: 1, field: models.MealFieldCalories, value: "много"},
		{name: "negative calories", id: 1, field: models.MealFieldCalories, value: "-1"},
		{name: "empty time", id: 1, field: models.MealFieldTime, value: ""},
		{name: "bad time", id: 1, field: models.MealFieldTime, value: "25:61"},
		{name: "unknown field", id: 1, field: models.MealField("protein"), value: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrackerFixture(t, true, false)
			svc := loadedNutrition(t, f, 100, 0, 0)

			data, err := svc.Update(context.Background(), tt.id, tt.field, tt.value)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 100, data.TotalCalories)
			assert.Nil(t, data.Meals[0].Time)
		})
	}
}

func TestNutritionService_ResetClearsMeals(t *testing.T) {
	f := newTrackerFixture(t, true, false)
	svc := loadedNutrition(t, f, 100, 200, 300)

	f.server.EXPECT().ResetNutrition(gomock.Any()).Return(nil)

	data, err := svc.Reset(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Meals, 3)
	assert.Equal(t, 0, data.TotalCalories)
	assert.Equal(t, "Түскі ас", data.Meals[1].Name)
}

func TestNutritionService_Offline(t *testing.T) {
	f := newTrackerFixture(t, false, true)
	ctx := context.Background()
	svc := NewNutritionService(f.cfg, f.server)

	_, err := svc.Update(ctx, 1, models.MealFieldCalories, "350")
	require.NoError(t, err)
	_, err = svc.Update(ctx, 3, models.MealFieldCalories, "600")
	require.NoError(t, err)

	data, err := NewNutritionService(f.cfg, f.server).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 950, data.TotalCalories)

	data, err = svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, data.TotalCalories)

	data, err = NewNutritionService(f.cfg, f.server).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, data.TotalCalories)
	assert.Len(t, data.Meals, 3)
}
