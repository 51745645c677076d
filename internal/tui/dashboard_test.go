// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kundelik/internal/app"
	"github.com/MKhiriev/kundelik/internal/service"
	"github.com/MKhiriev/kundelik/models"
)

func newOfflineDashboard(t *testing.T) (*DashboardModel, *service.ClientServices) {
	t.Helper()
	services, _ := newTestServices(t, true)
	return NewDashboardModel(context.Background(), services, true), services
}

// press отправляет клавишу и выполняет возникшую операцию трекера.
func press(t *testing.T, m *DashboardModel, msg tea.KeyMsg) {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd != nil {
		execCmd(t, m, cmd)
	}
}

func TestDashboard_TabsCycle(t *testing.T) {
	m, _ := newOfflineDashboard(t)

	for _, want := range []tab{tabSleep, tabNutrition, tabProgress, tabWater} {
		m.Update(keyTab)
		assert.Equal(t, want, m.tab)
	}

	m.Update(keyRunes("x"))
	require.True(t, m.confirmReset)
	m.Update(keyTab)
	assert.False(t, m.confirmReset, "any other key drops the reset prompt")
	assert.Equal(t, tabWater, m.tab)
}

func TestDashboard_Init_RefreshesAll(t *testing.T) {
	m, services := newOfflineDashboard(t)

	msg := m.cmdRefreshAll()()
	for tb := range tabCount {
		assert.Equal(t, 1, m.busy[tb])
	}

	m.Update(msg)
	assert.Zero(t, m.busy[tabWater])
	assert.Equal(t, service.StatusReady, services.WaterService.Snapshot().Status)
}

func TestDashboard_WaterPresetAndAmount(t *testing.T) {
	m, services := newOfflineDashboard(t)

	press(t, m, keyRunes("1"))
	assert.Equal(t, 250, services.WaterService.Snapshot().Data.TotalIntake)
	assert.Zero(t, m.busy[tabWater])

	m.Update(keyRunes("a"))
	require.Equal(t, inputWaterAmount, m.inputKind)
	m.Update(keyRunes("300"))
	press(t, m, keyEnter)

	assert.Equal(t, inputNone, m.inputKind)
	assert.Equal(t, 550, services.WaterService.Snapshot().Data.TotalIntake)
	assert.Contains(t, m.View(), "550 / 2000")
}

func TestDashboard_WaterInvalidAmount(t *testing.T) {
	m, services := newOfflineDashboard(t)

	m.Update(keyRunes("a"))
	m.Update(keyRunes("abc"))
	press(t, m, keyEnter)

	snap := services.WaterService.Snapshot()
	assert.ErrorIs(t, snap.Err, service.ErrInvalidInput)
	assert.Contains(t, m.View(), app.MsgInvalidInput)
}

func TestDashboard_InputEscCancels(t *testing.T) {
	m, services := newOfflineDashboard(t)

	m.Update(keyRunes("a"))
	m.Update(keyRunes("300"))
	_, cmd := m.Update(keyEsc)

	assert.Nil(t, cmd)
	assert.Equal(t, inputNone, m.inputKind)
	assert.Zero(t, services.WaterService.Snapshot().Data.TotalIntake)
}

func TestDashboard_SleepStartEnd(t *testing.T) {
	m, services := newOfflineDashboard(t)
	m.Update(keyTab)

	press(t, m, keyRunes("s"))
	assert.True(t, services.SleepService.Snapshot().Data.IsActive())
	assert.Contains(t, m.View(), "Ұйқы басталды")

	press(t, m, keyRunes("e"))
	snap := services.SleepService.Snapshot()
	assert.False(t, snap.Data.IsActive())
	assert.Len(t, snap.Data.History, 1)

	press(t, m, keyRunes("e"))
	assert.Contains(t, m.View(), app.MsgNoActiveSession)
}

func TestDashboard_NutritionCalories(t *testing.T) {
	m, services := newOfflineDashboard(t)
	m.Update(keyTab)
	m.Update(keyTab)

	m.Update(keyDown)
	require.Equal(t, 1, m.mealIdx)

	m.Update(keyEnter)
	require.Equal(t, inputCalories, m.inputKind)
	m.Update(keyRunes("450"))
	press(t, m, keyEnter)

	day := services.NutritionService.Snapshot().Data
	assert.Equal(t, 450, day.Meals[1].Calories)
	assert.Equal(t, 450, day.TotalCalories)
}

func TestDashboard_ProgressDraftsAndRecord(t *testing.T) {
	m, services := newOfflineDashboard(t)
	m.tab = tabProgress

	m.Update(keyRunes("w"))
	m.Update(keyRunes("72,5"))
	m.Update(keyEnter)

	m.Update(keyRunes("g"))
	m.Update(keyRunes("65"))
	m.Update(keyEnter)

	press(t, m, keyEnter)

	rec := services.ProgressService.Snapshot().Data
	require.Len(t, rec.History, 1)
	assert.InDelta(t, 72.5, rec.History[0].CurrentWeight, 0.001)
	assert.InDelta(t, 65.0, rec.History[0].GoalWeight, 0.001)
}

func TestDashboard_MeasurementCommittedOnSubmit(t *testing.T) {
	m, services := newOfflineDashboard(t)
	m.tab = tabProgress

	m.Update(keyRunes("h"))
	m.Update(keyRunes("180"))
	press(t, m, keyEnter)

	m.Update(keyRunes("m"))
	m.Update(keyRunes("81"))
	press(t, m, keyEnter)

	assert.Zero(t, m.busy[tabProgress])
	assert.Empty(t, m.status)

	// замеры уже сохранены и переживают перезагрузку
	rec, err := services.ProgressService.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Measurements{HeightCm: 180, WeightKg: 81}, rec.Measurements)
	assert.Equal(t, "25.0", rec.Measurements.BMIString())
}

func TestDashboard_ProgressDraftInvalid(t *testing.T) {
	m, _ := newOfflineDashboard(t)
	m.tab = tabProgress

	m.Update(keyRunes("h"))
	m.Update(keyRunes("tall"))
	_, cmd := m.Update(keyEnter)

	assert.NotNil(t, cmd)
	assert.Equal(t, app.MsgInvalidInput, m.status)
}

func TestDashboard_ResetNeedsConfirmation(t *testing.T) {
	m, services := newOfflineDashboard(t)
	press(t, m, keyRunes("2"))
	require.Equal(t, 500, services.WaterService.Snapshot().Data.TotalIntake)

	m.Update(keyRunes("x"))
	_, cmd := m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, 500, services.WaterService.Snapshot().Data.TotalIntake)

	m.Update(keyRunes("x"))
	press(t, m, keyRunes("y"))
	assert.Zero(t, services.WaterService.Snapshot().Data.TotalIntake)
}

func TestDashboard_QuitAndLogout(t *testing.T) {
	m, _ := newOfflineDashboard(t)
	_, cmd := m.Update(keyRunes("l"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ExitLogout, m.exit)

	m, _ = newOfflineDashboard(t)
	_, cmd = m.Update(keyRunes("q"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ExitQuit, m.exit)
}

func TestDashboard_UnauthorizedAsksForLogin(t *testing.T) {
	services, _ := newTestServices(t, false)
	m := NewDashboardModel(context.Background(), services, false)

	_, cmd := m.Update(keyRunes("1"))
	_, next := m.Update(cmd())

	assert.True(t, isQuit(next))
	assert.Equal(t, ExitReauth, m.exit)
}

func TestSummaries(t *testing.T) {
	assert.Equal(t, "Су: 500 / 2000 мл (25%)", waterSummary(models.WaterLog{TotalIntake: 500, DailyGoal: 2000}))
	assert.Equal(t, "Ұйқы: жазбалар жоқ", sleepSummary(models.NewSleepLog()))
	assert.Equal(t, "Калория: 450 / 2000", nutritionSummary(models.NutritionDay{TotalCalories: 450, DailyGoal: 2000}))
	assert.Equal(t, "Салмақ: 72.5 кг, мақсат: -, ДСИ: "+models.BMIMissingInput,
		progressSummary(models.ProgressRecord{CurrentWeight: 72.5}))
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, "[█████░░░░░] 50%", progressBar(50, 10))
	assert.Equal(t, "[██████████] 100%", progressBar(140, 10))
	assert.Equal(t, "Таңғ...", fitText("Таңғы ас бүгін", 7))
	assert.Equal(t, "-", formatKg(0))
	assert.Equal(t, []int{3, 4}, lastN([]int{1, 2, 3, 4}, 2))
}
