package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kundelik/internal/app"
	"github.com/MKhiriev/kundelik/internal/service"
	"github.com/MKhiriev/kundelik/models"
)

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	var (
		body  string
		state stateLine
		help  string
	)
	switch m.tab {
	case tabWater:
		snap := m.services.WaterService.Snapshot()
		body, state = renderWater(snap.Data), stateOf(snap)
		help = "1/2/3: 250/500/1000 мл │ a: мөлшер"
	case tabSleep:
		snap := m.services.SleepService.Snapshot()
		body, state = renderSleep(snap.Data, time.Now()), stateOf(snap)
		help = "s: бастау │ e: аяқтау"
	case tabNutrition:
		snap := m.services.NutritionService.Snapshot()
		body, state = renderNutrition(snap.Data, m.mealIdx), stateOf(snap)
		help = "↑/↓: тамақ │ enter: калория │ t: уақыт"
	case tabProgress:
		snap := m.services.ProgressService.Snapshot()
		body, state = renderProgress(snap.Data), stateOf(snap)
		help = "w/g: салмақ/мақсат │ enter: жазу │ h/m: бой/салмақ │ b: сақтау"
	}

	b.WriteString(body)
	b.WriteString("\n")

	switch {
	case m.busy[m.tab] > 0 || state.status == service.StatusLoading:
		b.WriteString("\n" + m.spinner.View() + " " + app.MsgLoading)
	case state.message != "":
		b.WriteString("\n" + errorStyle.Render("Қате: "+state.message))
	}
	if state.pending {
		b.WriteString("\n" + helpStyle.Render("Сақталмаған өзгерістер бар"))
	}
	if state.offline {
		b.WriteString("\n" + helpStyle.Render("Офлайн режим: деректер осы құрылғыда сақталады"))
	}

	if m.inputKind != inputNone {
		b.WriteString("\n\n" + m.inputKind.label() + ": [" + m.input.View() + "]")
		help = "enter: растау │ esc: болдырмау"
	} else if m.confirmReset {
		b.WriteString("\n\n" + errorStyle.Render(m.tab.title()+" деректерін тазалау керек пе? (y/n)"))
	}
	if m.status != "" {
		b.WriteString("\n\n" + okStyle.Render(m.status))
	}

	help += " │ tab: келесі │ r: жаңарту │ x: тазалау │ c: көшіру │ l: шығу │ q: жабу"
	return renderPage("KÜNDELIK", strings.TrimRight(b.String(), "\n"), help)
}

func (m *DashboardModel) renderTabs() string {
	labels := make([]string, 0, tabCount)
	for t := range tabCount {
		if t == m.tab {
			labels = append(labels, activeTabStyle.Render(t.title()))
		} else {
			labels = append(labels, tabStyle.Render(t.title()))
		}
	}
	return strings.Join(labels, "  │  ")
}

// stateLine is the type-independent part of a snapshot.
type stateLine struct {
	status  service.Status
	message string
	pending bool
	offline bool
}

func stateOf[T any](s service.Snapshot[T]) stateLine {
	return stateLine{status: s.Status, message: s.Message, pending: s.Pending, offline: s.Offline}
}

func renderWater(w models.WaterLog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ішілді: %d / %d мл\n", w.TotalIntake, w.DailyGoal)
	b.WriteString(progressBar(w.ProgressPercent(), 30))
	b.WriteString("\n")

	if len(w.History) == 0 {
		b.WriteString("\nТарих бос")
		return b.String()
	}
	b.WriteString("\nСоңғы жазбалар:\n")
	for _, e := range lastN(w.History, historyRows) {
		fmt.Fprintf(&b, "  %s  %d мл\n", formatStamp(e.Timestamp), e.AmountMl)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSleep(s models.SleepLog, now time.Time) string {
	var b strings.Builder
	if s.IsActive() {
		fmt.Fprintf(&b, "Ұйқы басталды: %s (%s)\n", formatStamp(*s.ActiveStart), models.FormatSleepDuration(now.Sub(*s.ActiveStart)))
	} else {
		b.WriteString("Белсенді ұйқы жоқ\n")
	}

	if len(s.History) == 0 {
		b.WriteString("\nТарих бос")
		return b.String()
	}
	b.WriteString("\nСоңғы сессиялар:\n")
	for _, e := range lastN(s.History, historyRows) {
		fmt.Fprintf(&b, "  %s → %s  %s\n", formatStamp(e.Start), formatStamp(e.End), e.Duration)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNutrition(n models.NutritionDay, selected int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Калория: %d / %d\n", n.TotalCalories, n.DailyGoal)
	b.WriteString(progressBar(n.ProgressPercent(), 30))
	b.WriteString("\n\n")

	for i, meal := range n.Meals {
		cursor := " "
		if i == selected {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %-12s %5d ккал  %s\n", cursor, fitText(meal.Name, 12), meal.Calories, formatClock(meal.Time))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderProgress(p models.ProgressRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Қазіргі салмақ:  %s\n", formatKg(p.CurrentWeight))
	fmt.Fprintf(&b, "Мақсатты салмақ: %s\n", formatKg(p.GoalWeight))
	fmt.Fprintf(&b, "\nБой: %s см, салмақ: %s\n", formatNumber(p.Measurements.HeightCm), formatKg(p.Measurements.WeightKg))
	fmt.Fprintf(&b, "ДСИ: %s\n", p.Measurements.BMIString())

	if len(p.History) > 0 {
		b.WriteString("\nТарих:\n")
		for _, e := range lastN(p.History, historyRows) {
			fmt.Fprintf(&b, "  %s  %s → %s\n", formatStamp(e.Date), formatKg(e.CurrentWeight), formatKg(e.GoalWeight))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func waterSummary(w models.WaterLog) string {
	return fmt.Sprintf("Су: %d / %d мл (%.0f%%)", w.TotalIntake, w.DailyGoal, w.ProgressPercent())
}

func sleepSummary(s models.SleepLog) string {
	if len(s.History) == 0 {
		return "Ұйқы: жазбалар жоқ"
	}
	last := s.History[len(s.History)-1]
	return fmt.Sprintf("Ұйқы: %d сессия, соңғысы %s", len(s.History), last.Duration)
}

func nutritionSummary(n models.NutritionDay) string {
	return fmt.Sprintf("Калория: %d / %d", n.TotalCalories, n.DailyGoal)
}

func progressSummary(p models.ProgressRecord) string {
	return fmt.Sprintf("Салмақ: %s, мақсат: %s, ДСИ: %s", formatKg(p.CurrentWeight), formatKg(p.GoalWeight), p.Measurements.BMIString())
}
