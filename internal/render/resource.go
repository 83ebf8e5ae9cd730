package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellday/internal/models"
)

// Resource renders a support resource with its activities and tips.
func Resource(r models.SupportResource) string {
	header := titleStyle.Render(r.Title)
	if r.Urgency == models.UrgencyHigh {
		header += " " + urgentStyle.Render("[urgent]")
	}

	parts := []string{
		header,
		subtleStyle.Render(fmt.Sprintf("%s · %s priority", r.Category, r.Urgency)),
		r.Description,
	}

	if len(r.Activities) > 0 {
		parts = append(parts, "", "Activities:")
		for _, a := range r.Activities {
			parts = append(parts, fmt.Sprintf("  %s %s %s", a.Name, subtleStyle.Render("("+a.Duration+")"), subtleStyle.Render(a.ID)))
		}
	}
	if len(r.Tips) > 0 {
		parts = append(parts, "", "Tips:")
		for _, t := range r.Tips {
			parts = append(parts, "  • "+t)
		}
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Activity renders an activity's numbered steps.
func Activity(a models.Activity) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Name))
	b.WriteString(subtleStyle.Render(" (" + a.Duration + ")"))
	for i, step := range a.Instructions {
		fmt.Fprintf(&b, "\n%2d. %s", i+1, step)
	}
	return b.String()
}

// EmergencyContacts renders the crisis contact list.
func EmergencyContacts(contacts []models.EmergencyContact) string {
	lines := []string{urgentStyle.Render("If you are in crisis, reach out now:")}
	for _, c := range contacts {
		lines = append(lines, fmt.Sprintf("  %s  %s  %s", c.Name, titleStyle.Render(c.Phone), subtleStyle.Render(c.Description)))
	}
	return strings.Join(lines, "\n")
}
