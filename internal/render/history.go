package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellday/internal/analytics"
	"github.com/julianstephens/wellday/internal/models"
)

// Entry renders one entry on a single line.
func Entry(e models.Entry) string {
	line := fmt.Sprintf("%s  mood %d  energy %d  sleep %d  stress %d",
		e.Date, e.Mood, e.Energy, e.Sleep, e.Stress)
	if e.Note != "" {
		line += subtleStyle.Render("  " + e.Note)
	}
	return line
}

// Snapshot renders the four metrics as labelled rows.
func Snapshot(s models.Snapshot) string {
	var b strings.Builder
	for _, m := range models.Metrics {
		fmt.Fprintf(&b, "%s%d/5\n", labelStyle.Render(m.Label()), m.Value(s))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Overview renders the headline numbers of a report.
func Overview(r analytics.Report) string {
	today := badStyle.Render("not yet")
	if r.TodayLogged {
		today = goodStyle.Render("done")
	}
	rows := []string{
		titleStyle.Render("Overview"),
		labelStyle.Render("Entries") + fmt.Sprint(r.Total),
		labelStyle.Render("Streak") + fmt.Sprintf("%d day(s)", r.Streak),
		labelStyle.Render("Best streak") + fmt.Sprintf("%d day(s)", r.LongestStreak),
		labelStyle.Render("Today") + today,
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Summaries renders the rolling averages with trend arrows.
func Summaries(sums []analytics.MetricSummary) string {
	rows := []string{titleStyle.Render("Last 7 entries")}
	for _, s := range sums {
		arrow := s.Trend.Arrow()
		switch {
		case s.Trend == analytics.Stable:
			arrow = subtleStyle.Render(arrow)
		case s.Trend.Improving(s.Metric):
			arrow = goodStyle.Render(arrow)
		default:
			arrow = badStyle.Render(arrow)
		}
		rows = append(rows, fmt.Sprintf("%s%.1f %s", labelStyle.Render(s.Metric.Label()), s.Average, arrow))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Insights renders milestone messages as a bullet list.
func Insights(msgs []string) string {
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = "• " + m
	}
	return strings.Join(lines, "\n")
}

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Heatmap renders a Sunday-first month calendar shaded by daily average.
func Heatmap(cells []analytics.DayCell, month time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(month.Format("January 2006")))
	b.WriteString("\n")
	for _, h := range weekdayHeader {
		b.WriteString(fmt.Sprintf("%3s", h))
	}
	b.WriteString("\n")

	col := analytics.LeadingBlanks(month)
	b.WriteString(strings.Repeat("   ", col))
	for _, c := range cells {
		b.WriteString(heatStyle(analytics.Intensity(c.Average)).Render(fmt.Sprint(c.Day)))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	legend := make([]string, len(heatColors))
	for i := range heatColors {
		legend[i] = heatStyle(i).Render(" ")
	}
	b.WriteString(subtleStyle.Render("less ") + strings.Join(legend, "") + subtleStyle.Render(" more"))
	return b.String()
}

// Week renders the last seven days as a small table, one column per day.
func Week(points []analytics.WeeklyPoint) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Last 7 days"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(""))
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%4s", weekdayHeader[p.Weekday]))
	}
	b.WriteString("\n")

	rows := []struct {
		label string
		value func(analytics.WeeklyPoint) *int
	}{
		{models.MetricMood.Label(), func(p analytics.WeeklyPoint) *int { return p.Mood }},
		{models.MetricEnergy.Label(), func(p analytics.WeeklyPoint) *int { return p.Energy }},
		{models.MetricSleep.Label(), func(p analytics.WeeklyPoint) *int { return p.Sleep }},
		{"Calm", func(p analytics.WeeklyPoint) *int { return p.Calm }},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		for _, p := range points {
			if v := row.value(p); v != nil {
				b.WriteString(fmt.Sprintf("%4d", *v))
			} else {
				b.WriteString(subtleStyle.Render(fmt.Sprintf("%4s", "·")))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
