package analytics

import (
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

// NoData marks a calendar day without an entry. Real averages are always at least 1.
const NoData = -1.0

// DayCell is one calendar day of the month grid
type DayCell struct {
	Day      int
	Date     string
	Weekday  time.Weekday
	HasEntry bool
	Average  float64 // NoData when HasEntry is false
}

// DayAverage blends the four metrics into a single higher-is-better score.
// Stress is inverted so every component points the same way.
func DayAverage(e models.Entry) float64 {
	return float64(e.Mood+e.Energy+e.Sleep+(6-e.Stress)) / 4
}

// MonthGrid returns one cell per calendar day of month's month.
func MonthGrid(entries []models.Entry, month time.Time) []DayCell {
	idx := indexByDate(entries)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, days)
	for d := 0; d < days; d++ {
		day := first.AddDate(0, 0, d)
		date := day.Format(constants.DateFormat)
		cell := DayCell{
			Day:     day.Day(),
			Date:    date,
			Weekday: day.Weekday(),
			Average: NoData,
		}
		if e, ok := idx[date]; ok {
			cell.HasEntry = true
			cell.Average = DayAverage(e)
		}
		cells = append(cells, cell)
	}
	return cells
}

// LeadingBlanks is the number of empty grid slots before the 1st in a
// Sunday-first week layout.
func LeadingBlanks(month time.Time) int {
	return int(time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Intensity buckets an average into levels 0..5 for heatmap shading.
// Level 0 means no data.
func Intensity(average float64) int {
	switch {
	case average <= 0:
		return 0
	case average < 2:
		return 1
	case average < 3:
		return 2
	case average < 4:
		return 3
	case average < 4.5:
		return 4
	default:
		return 5
	}
}
