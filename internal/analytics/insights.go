package analytics

import "github.com/julianstephens/wellday/internal/models"

const (
	InsightKeepLogging = "Keep logging to unlock more detailed insights into your wellbeing patterns."
	InsightOneWeek     = "Great work! You have kept the habit for a full week."
	InsightOneMonth    = "Amazing! A month of steady tracking will help you spot important patterns."
)

// Insights returns milestone messages based on how many entries exist.
func Insights(entries []models.Entry) []string {
	n := len(entries)
	if n < 7 {
		return []string{InsightKeepLogging}
	}
	out := []string{InsightOneWeek}
	if n >= 30 {
		out = append(out, InsightOneMonth)
	}
	return out
}
