package analytics

import (
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/utils"
)

// WeeklyPoint is one day of the last-seven-days series. Metric pointers are
// nil on days without an entry.
type WeeklyPoint struct {
	Date    string
	Weekday time.Weekday
	Mood    *int
	Energy  *int
	Sleep   *int
	Calm    *int // 6 - stress, so higher is better like the other metrics
}

// WeeklySeries returns the seven calendar days ending today, oldest first.
func WeeklySeries(entries []models.Entry, today time.Time) []WeeklyPoint {
	idx := indexByDate(entries)
	end := utils.CalendarDay(today)

	points := make([]WeeklyPoint, 0, constants.WeeklySeriesLen)
	for i := constants.WeeklySeriesLen - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		date := day.Format(constants.DateFormat)
		p := WeeklyPoint{Date: date, Weekday: day.Weekday()}
		if e, ok := idx[date]; ok {
			mood, energy, sleep, calm := e.Mood, e.Energy, e.Sleep, 6-e.Stress
			p.Mood, p.Energy, p.Sleep, p.Calm = &mood, &energy, &sleep, &calm
		}
		points = append(points, p)
	}
	return points
}
