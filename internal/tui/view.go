package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/recommend"
	"github.com/julianstephens/wellday/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateHistory:
		content = docStyle.Render(m.history.View())
	case StateSupport:
		content = docStyle.Render(m.support.View())
	case StateLogForm:
		content = docStyle.Render(m.form.View())
	}

	var banner string
	if m.banner != "" {
		banner = warningStyle.Render("🔔 " + m.banner)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	active := m.state
	if active == StateLogForm {
		active = StateToday
	}
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, clockStyle.Render(m.clock.Now().Format("Mon Jan 2 15:04")))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	if m.err != nil {
		return docStyle.Render(dangerStyle.Render("Error: " + m.err.Error()))
	}

	sections := []string{render.Overview(m.report)}

	if m.report.TodayLogged && m.report.Latest != nil {
		sections = append(sections, render.Snapshot(m.report.Latest.Snapshot()))
	} else {
		sections = append(sections, "No check-in yet today. Press "+okStyle.Render("l")+" to log how you feel.")
	}

	if m.suggested != nil {
		sections = append(sections, render.Resource(*m.suggested))
		if m.suggested.Urgency == models.UrgencyHigh {
			sections = append(sections, render.EmergencyContacts(recommend.EmergencyContacts()))
		}
	}

	if len(m.report.Insights) > 0 {
		sections = append(sections, render.Insights(m.report.Insights))
	}

	if m.status != "" {
		sections = append(sections, okStyle.Render(m.status))
	}

	return docStyle.Render(strings.Join(sections, "\n\n"))
}

// historyContent renders the scrollable History tab.
func (m Model) historyContent(entries []models.Entry, now time.Time) string {
	if len(entries) == 0 {
		return "No check-ins yet."
	}

	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	lines := make([]string, len(sorted))
	for i, e := range sorted {
		lines[i] = render.Entry(e)
	}

	return strings.Join([]string{
		render.Week(m.report.Week),
		render.Heatmap(m.report.Month, now),
		render.Summaries(m.report.Summaries),
		fmt.Sprintf("All check-ins (%d):\n%s", len(sorted), strings.Join(lines, "\n")),
	}, "\n\n")
}
