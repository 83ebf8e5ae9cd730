package analytics

import (
	"time"

	"github.com/julianstephens/wellday/internal/models"
)

// Report bundles every derived view of a history
type Report struct {
	Total         int
	Streak        int
	LongestStreak int
	TodayLogged   bool
	Latest        *models.Entry
	Summaries     []MetricSummary
	Month         []DayCell
	Week          []WeeklyPoint
	Insights      []string
}

// Build validates the history and computes a report relative to today.
// Malformed entries fail the whole build.
func Build(entries []models.Entry, today time.Time) (Report, error) {
	if err := Validate(entries); err != nil {
		return Report{}, err
	}

	sorted := sortedByDate(entries)
	r := Report{
		Total:         len(sorted),
		Streak:        Streak(sorted, today),
		LongestStreak: LongestStreak(sorted),
		TodayLogged:   HasEntryOn(sorted, today),
		Summaries:     Summaries(sorted),
		Month:         MonthGrid(sorted, today),
		Week:          WeeklySeries(sorted, today),
		Insights:      Insights(sorted),
	}
	if len(sorted) > 0 {
		latest := sorted[len(sorted)-1]
		r.Latest = &latest
	}
	return r, nil
}
