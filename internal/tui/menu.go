package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label string
	page  string
}

// offlinePage is a pseudo page: choosing it ends the auth flow offline.
const offlinePage = "offline"

type MenuModel struct {
	items  []menuItem
	idx    int
	status string
	notice string
}

// NewMenuModel builds the start menu. The offline entry is only offered when
// device-local persistence is enabled.
func NewMenuModel(offline bool) *MenuModel {
	items := []menuItem{
		{label: "Кіру", page: "login"},
		{label: "Тіркелу", page: "register"},
	}
	if offline {
		items = append(items, menuItem{label: "Тіркелгісіз жалғастыру", page: offlinePage})
	}
	return &MenuModel{items: items}
}

// WithNotice makes the menu show text once it starts.
func (m *MenuModel) WithNotice(text string) *MenuModel {
	m.notice = text
	return m
}

func (m *MenuModel) Init() tea.Cmd {
	if m.notice == "" {
		return nil
	}
	notice := menuNotice(m.notice)
	m.notice = ""
	return func() tea.Msg { return notice }
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(menuNotice); ok {
		m.status = string(notice)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		item := m.items[m.idx]
		if item.page == offlinePage {
			return m, func() tea.Msg { return AuthResult{Offline: true} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: item.page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("№")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // "<marker> <id>"

	actionColWidth := lipgloss.Width("Әрекет")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "№", actionColWidth, "Әрекет"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.label))
	}

	return renderPage("KÜNDELIK", strings.TrimRight(b.String(), "\n"), "enter: таңдау │ ↑/↓: навигация │ v: нұсқа")
}

// menuNotice is a one-line status shown above the menu.
type menuNotice string
