// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kundelik/internal/service"
	"github.com/MKhiriev/kundelik/models"
)

type tab int

const (
	tabWater tab = iota
	tabSleep
	tabNutrition
	tabProgress
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabWater:
		return "Су"
	case tabSleep:
		return "Ұйқы"
	case tabNutrition:
		return "Тамақтану"
	case tabProgress:
		return "Прогресс"
	}
	return "?"
}

// inputKind is the value the text input is currently collecting.
type inputKind int

const (
	inputNone inputKind = iota
	inputWaterAmount
	inputCalories
	inputMealTime
	inputCurrentWeight
	inputGoalWeight
	inputHeight
	inputBodyWeight
)

func (k inputKind) label() string {
	switch k {
	case inputWaterAmount:
		return "Мөлшер (мл)"
	case inputCalories:
		return "Калория"
	case inputMealTime:
		return "Уақыты (СС:ММ)"
	case inputCurrentWeight:
		return "Қазіргі салмақ (кг)"
	case inputGoalWeight:
		return "Мақсатты салмақ (кг)"
	case inputHeight:
		return "Бой (см)"
	case inputBodyWeight:
		return "Салмақ (кг)"
	}
	return ""
}

// DashboardModel shows one tracker per tab. Every read goes through the
// tracker's Snapshot; every write runs as a command off the UI goroutine.
type DashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	offline  bool

	tab     tab
	busy    [tabCount]int
	spinner spinner.Model

	input     textinput.Model
	inputKind inputKind

	mealIdx      int
	confirmReset bool
	status       string

	exit Exit
}

// NewDashboardModel builds the dashboard on the water tab.
func NewDashboardModel(ctx context.Context, services *service.ClientServices, offline bool) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.CharLimit = 16
	in.Width = 20

	return &DashboardModel{
		ctx:      ctx,
		services: services,
		offline:  offline,
		spinner:  s,
		input:    in,
	}
}

// Init reloads every tracker.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefreshAll())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshedMsg:
		for i := range m.busy {
			m.busy[i] = max(m.busy[i]-1, 0)
		}
		return m, m.afterOp(msg.err)

	case opDoneMsg:
		m.busy[msg.tab] = max(m.busy[msg.tab]-1, 0)
		return m, m.afterOp(msg.err)

	case copiedMsg:
		if msg.err != nil {
			m.status = "Көшіру мүмкін болмады"
		} else {
			m.status = "Көшірілді"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.inputKind != inputNone {
			return m.updateInput(msg)
		}
		if m.confirmReset {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// afterOp leaves the dashboard when the server rejected the session.
func (m *DashboardModel) afterOp(err error) tea.Cmd {
	if err == nil || !errors.Is(err, service.ErrUnauthorized) {
		return nil
	}
	if m.offline || m.services.AuthService.Session().IsAuthenticated() {
		return nil
	}
	m.exit = ExitReauth
	return tea.Quit
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.exit = ExitQuit
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.exit = ExitLogout
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.switchTab(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.switchTab(-1)
		return m, nil
	case key.Matches(msg, keys.reload):
		return m, m.run(m.tab, m.tracker(m.tab).Refresh)
	case key.Matches(msg, keys.reset):
		m.confirmReset = true
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.summary())
	}

	switch m.tab {
	case tabWater:
		return m.updateWater(msg)
	case tabSleep:
		return m.updateSleep(msg)
	case tabNutrition:
		return m.updateNutrition(msg)
	case tabProgress:
		return m.updateProgress(msg)
	}
	return m, nil
}

func (m *DashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmReset = false
	if key.Matches(msg, keys.yes) {
		return m, m.run(m.tab, m.resetOp(m.tab))
	}
	return m, nil
}

func (m *DashboardModel) updateWater(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	water := m.services.WaterService
	preset := func(i int) tea.Cmd {
		ml := models.WaterPresetsMl[i]
		return m.run(tabWater, func(ctx context.Context) error {
			_, err := water.AddPreset(ctx, ml)
			return err
		})
	}

	switch {
	case key.Matches(msg, keys.preset1):
		return m, preset(0)
	case key.Matches(msg, keys.preset2):
		return m, preset(1)
	case key.Matches(msg, keys.preset3):
		return m, preset(2)
	case key.Matches(msg, keys.amount):
		return m, m.openInput(inputWaterAmount, "")
	}
	return m, nil
}

func (m *DashboardModel) updateSleep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sleep := m.services.SleepService
	switch {
	case key.Matches(msg, keys.sleepStart):
		return m, m.run(tabSleep, func(ctx context.Context) error {
			_, err := sleep.StartSleep(ctx)
			return err
		})
	case key.Matches(msg, keys.sleepEnd):
		return m, m.run(tabSleep, func(ctx context.Context) error {
			_, err := sleep.EndSleep(ctx)
			return err
		})
	}
	return m, nil
}

func (m *DashboardModel) updateNutrition(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	meals := m.services.NutritionService.Snapshot().Data.Meals
	switch {
	case key.Matches(msg, keys.up):
		if m.mealIdx > 0 {
			m.mealIdx--
		}
	case key.Matches(msg, keys.down):
		if m.mealIdx < len(meals)-1 {
			m.mealIdx++
		}
	case key.Matches(msg, keys.enter):
		if m.mealIdx < len(meals) {
			return m, m.openInput(inputCalories, "")
		}
	case key.Matches(msg, keys.mealTime):
		if m.mealIdx < len(meals) {
			return m, m.openInput(inputMealTime, time.Now().Format(models.MealTimeLayout))
		}
	}
	return m, nil
}

func (m *DashboardModel) updateProgress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	progress := m.services.ProgressService
	switch {
	case key.Matches(msg, keys.currentWeight):
		return m, m.openInput(inputCurrentWeight, "")
	case key.Matches(msg, keys.goalWeight):
		return m, m.openInput(inputGoalWeight, "")
	case key.Matches(msg, keys.height):
		return m, m.openInput(inputHeight, "")
	case key.Matches(msg, keys.bodyWeight):
		return m, m.openInput(inputBodyWeight, "")
	case key.Matches(msg, keys.enter):
		return m, m.run(tabProgress, func(ctx context.Context) error {
			_, err := progress.RecordEntry(ctx)
			return err
		})
	case key.Matches(msg, keys.commit):
		return m, m.run(tabProgress, func(ctx context.Context) error {
			_, err := progress.CommitMeasurements(ctx)
			return err
		})
	}
	return m, nil
}

func (m *DashboardModel) openInput(kind inputKind, value string) tea.Cmd {
	m.inputKind = kind
	m.input.Placeholder = kind.label()
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *DashboardModel) closeInput() {
	m.inputKind = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *DashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeInput()
		return m, nil
	case key.Matches(msg, keys.enter):
		kind, value := m.inputKind, m.input.Value()
		m.closeInput()
		return m, m.submit(kind, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the collected value. Weight drafts are local edits and run
// synchronously; everything else is a tracker operation.
func (m *DashboardModel) submit(kind inputKind, value string) tea.Cmd {
	progress := m.services.ProgressService
	nutrition := m.services.NutritionService

	var draftErr error
	switch kind {
	case inputWaterAmount:
		water := m.services.WaterService
		return m.run(tabWater, func(ctx context.Context) error {
			_, err := water.AddIntake(ctx, value)
			return err
		})
	case inputCalories, inputMealTime:
		meals := nutrition.Snapshot().Data.Meals
		if m.mealIdx >= len(meals) {
			return nil
		}
		mealID := meals[m.mealIdx].ID
		field := models.MealFieldCalories
		if kind == inputMealTime {
			field = models.MealFieldTime
		}
		return m.run(tabNutrition, func(ctx context.Context) error {
			_, err := nutrition.Update(ctx, mealID, field, value)
			return err
		})
	case inputCurrentWeight:
		_, draftErr = progress.SetCurrentWeight(value)
	case inputGoalWeight:
		_, draftErr = progress.SetGoalWeight(value)
	case inputHeight, inputBodyWeight:
		field := models.MeasurementHeight
		if kind == inputBodyWeight {
			field = models.MeasurementWeight
		}
		if _, draftErr = progress.EditMeasurement(field, value); draftErr == nil {
			// leaving a measurement field commits it
			return m.run(tabProgress, func(ctx context.Context) error {
				_, err := progress.CommitMeasurements(ctx)
				return err
			})
		}
	}

	if draftErr != nil {
		m.status = humanizeError(draftErr)
		return cmdClearStatus()
	}
	return nil
}

func (m *DashboardModel) switchTab(delta int) {
	m.tab = tab((int(m.tab) + delta + int(tabCount)) % int(tabCount))
	m.confirmReset = false
}

// run executes op for tab as a command and marks the tab busy until it ends.
func (m *DashboardModel) run(t tab, op func(ctx context.Context) error) tea.Cmd {
	m.busy[t]++
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{tab: t, err: op(ctx)}
	}
}

func (m *DashboardModel) cmdRefreshAll() tea.Cmd {
	for i := range m.busy {
		m.busy[i]++
	}
	ctx := m.ctx
	refresher := m.services.Refresher
	return func() tea.Msg {
		return refreshedMsg{err: refresher.RefreshAll(ctx)}
	}
}

func (m *DashboardModel) resetOp(t tab) func(ctx context.Context) error {
	svc := m.services
	return func(ctx context.Context) error {
		var err error
		switch t {
		case tabWater:
			_, err = svc.WaterService.Reset(ctx)
		case tabSleep:
			_, err = svc.SleepService.Reset(ctx)
		case tabNutrition:
			_, err = svc.NutritionService.Reset(ctx)
		case tabProgress:
			_, err = svc.ProgressService.Reset(ctx)
		}
		return err
	}
}

type refreshTracker interface {
	Refresh(ctx context.Context) error
}

func (m *DashboardModel) tracker(t tab) refreshTracker {
	switch t {
	case tabSleep:
		return m.services.SleepService
	case tabNutrition:
		return m.services.NutritionService
	case tabProgress:
		return m.services.ProgressService
	default:
		return m.services.WaterService
	}
}

// summary is the plain-text digest of the active tab copied by the copy key.
func (m *DashboardModel) summary() string {
	switch m.tab {
	case tabSleep:
		return sleepSummary(m.services.SleepService.Snapshot().Data)
	case tabNutrition:
		return nutritionSummary(m.services.NutritionService.Snapshot().Data)
	case tabProgress:
		return progressSummary(m.services.ProgressService.Snapshot().Data)
	default:
		return waterSummary(m.services.WaterService.Snapshot().Data)
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(strings.TrimSpace(text))}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
