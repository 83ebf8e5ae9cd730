// Package analytics derives streaks, rolling averages, trends, and calendar
// aggregates from a wellness history. Every function is pure: inputs are
// never mutated and no state is kept between calls.
package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/utils"
)

// ErrDuplicateDate is returned when a history holds two entries for one calendar date.
var ErrDuplicateDate = errors.New("duplicate entry date")

// sortedByDate returns a copy of entries ordered oldest first.
// Dates are YYYY-MM-DD so lexical order is chronological.
func sortedByDate(entries []models.Entry) []models.Entry {
	sorted := append([]models.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// indexByDate maps each date to its entry.
func indexByDate(entries []models.Entry) map[string]models.Entry {
	idx := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		idx[e.Date] = e
	}
	return idx
}

// Validate checks every entry and rejects duplicate dates.
func Validate(entries []models.Entry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.Date] {
			return fmt.Errorf("%s: %w", e.Date, ErrDuplicateDate)
		}
		seen[e.Date] = true
	}
	return nil
}

// HasEntryOn reports whether the history holds an entry for day's calendar date.
func HasEntryOn(entries []models.Entry, day time.Time) bool {
	date := day.Format(constants.DateFormat)
	for _, e := range entries {
		if e.Date == date {
			return true
		}
	}
	return false
}

// offsetFrom returns how many calendar days before today the entry falls.
func offsetFrom(e models.Entry, today time.Time) (int, error) {
	d, err := e.Day()
	if err != nil {
		return 0, err
	}
	return utils.DaysBetween(d, utils.CalendarDay(today)), nil
}
