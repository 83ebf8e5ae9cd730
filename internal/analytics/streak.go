package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/utils"
)

// Streak counts consecutive logged days walking back from today.
//
// An entry at the expected offset (0 for today, then 1, 2, ...) extends the
// streak. While the streak is still 0, an entry exactly one day past the
// expected offset also counts, so an unlogged today does not break a streak
// anchored on yesterday. That relaxation is used at most once; any other gap
// ends the walk. Entries dated after today are ignored.
func Streak(entries []models.Entry, today time.Time) int {
	sorted := sortedByDate(entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	streak := 0
	expected := 0
	for _, e := range sorted {
		offset, err := offsetFrom(e, today)
		if err != nil || offset < 0 {
			continue
		}
		switch {
		case offset == expected:
			streak++
			expected++
		case streak == 0 && offset == expected+1:
			streak++
			expected = offset + 1
		default:
			return streak
		}
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days with an entry.
func LongestStreak(entries []models.Entry) int {
	sorted := sortedByDate(entries)

	longest, run := 0, 0
	var prev time.Time
	for _, e := range sorted {
		d, err := e.Day()
		if err != nil {
			continue
		}
		gap := utils.DaysBetween(prev, d)
		switch {
		case run > 0 && gap == 0:
			continue
		case run > 0 && gap == 1:
			run++
		default:
			run = 1
		}
		prev = d
		longest = max(longest, run)
	}
	return longest
}
