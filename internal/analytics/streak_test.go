package analytics

import (
	"testing"
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

var today = time.Date(2024, 3, 15, 21, 30, 0, 0, time.UTC)

func entryOn(daysAgo int, mood, energy, sleep, stress int) models.Entry {
	date := today.AddDate(0, 0, -daysAgo).Format(constants.DateFormat)
	return models.Entry{ID: date, Date: date, Mood: mood, Energy: energy, Sleep: sleep, Stress: stress}
}

func daysAgo(offsets ...int) []models.Entry {
	out := make([]models.Entry, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, entryOn(o, 3, 3, 3, 3))
	}
	return out
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.Entry
		want    int
	}{
		{name: "empty history", entries: nil, want: 0},
		{name: "today yesterday day before", entries: daysAgo(0, 1, 2), want: 3},
		{name: "today missing", entries: daysAgo(1, 2), want: 2},
		{name: "only today", entries: daysAgo(0), want: 1},
		{name: "only yesterday", entries: daysAgo(1), want: 1},
		{name: "gap of two terminates", entries: daysAgo(0, 1, 3, 4), want: 2},
		{name: "last entry two days ago", entries: daysAgo(2, 3, 4), want: 0},
		{name: "relaxation used only once", entries: daysAgo(1, 3, 4), want: 1},
		{name: "unsorted input", entries: daysAgo(2, 0, 1), want: 3},
		{name: "future entry ignored", entries: append(daysAgo(0, 1), entryOn(-1, 3, 3, 3, 3)), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.entries, today); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakDoesNotMutateInput(t *testing.T) {
	entries := daysAgo(2, 0, 1)
	before := append([]models.Entry(nil), entries...)
	Streak(entries, today)
	for i := range entries {
		if entries[i].Date != before[i].Date {
			t.Fatalf("input reordered at %d: %s != %s", i, entries[i].Date, before[i].Date)
		}
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.Entry
		want    int
	}{
		{name: "empty", entries: nil, want: 0},
		{name: "single", entries: daysAgo(10), want: 1},
		{name: "runs of three and five", entries: daysAgo(20, 19, 18, 10, 9, 8, 7, 6), want: 5},
		{name: "current run is longest", entries: daysAgo(9, 3, 2, 1, 0), want: 4},
		{name: "all isolated", entries: daysAgo(0, 2, 4, 6), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestStreak(tt.entries); got != tt.want {
				t.Errorf("LongestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreakAcrossMonthBoundary(t *testing.T) {
	entries := []models.Entry{
		{Date: "2024-02-28", Mood: 3, Energy: 3, Sleep: 3, Stress: 3},
		{Date: "2024-02-29", Mood: 3, Energy: 3, Sleep: 3, Stress: 3},
		{Date: "2024-03-01", Mood: 3, Energy: 3, Sleep: 3, Stress: 3},
	}
	if got := LongestStreak(entries); got != 3 {
		t.Errorf("LongestStreak() = %d, want 3", got)
	}
}
