package analytics

import (
	"math"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

// Direction is the heuristic movement of a metric between two recent windows
type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Stable Direction = "stable"
)

// Arrow renders the direction as a single glyph.
func (d Direction) Arrow() string {
	switch d {
	case Up:
		return "↑"
	case Down:
		return "↓"
	default:
		return "→"
	}
}

// Improving reports whether the direction is good news for metric.
// For stress, going up means getting worse.
func (d Direction) Improving(m models.Metric) bool {
	if d == Stable {
		return false
	}
	if m.Inverted() {
		return d == Down
	}
	return d == Up
}

// MetricSummary is the rolling average and trend of one metric
type MetricSummary struct {
	Metric  models.Metric
	Average float64
	Trend   Direction
}

func mean(entries []models.Entry, m models.Metric) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += m.Value(e.Snapshot())
	}
	return float64(sum) / float64(len(entries))
}

// lastN returns the newest n entries of an oldest-first slice.
func lastN(sorted []models.Entry, n int) []models.Entry {
	if len(sorted) <= n {
		return sorted
	}
	return sorted[len(sorted)-n:]
}

// RollingAverage is the mean of the metric over the newest seven entries,
// or over all of them when fewer exist. An empty history averages to 0.
func RollingAverage(entries []models.Entry, m models.Metric) float64 {
	return mean(lastN(sortedByDate(entries), constants.AverageWindow), m)
}

// Trend compares the mean of the newest three entries with the mean of the
// three before them. Without an entry in both windows the trend is Stable, as
// is any difference smaller than 0.3.
func Trend(entries []models.Entry, m models.Metric) Direction {
	sorted := sortedByDate(entries)
	n := len(sorted)

	recent := lastN(sorted, constants.TrendWindow)
	olderEnd := max(n-constants.TrendWindow, 0)
	olderStart := max(n-2*constants.TrendWindow, 0)
	older := sorted[olderStart:olderEnd]

	if len(recent) == 0 || len(older) == 0 {
		return Stable
	}

	diff := mean(recent, m) - mean(older, m)
	if math.Abs(diff) < constants.TrendThreshold {
		return Stable
	}
	if diff > 0 {
		return Up
	}
	return Down
}

// Summaries returns the average and trend of every metric in display order.
func Summaries(entries []models.Entry) []MetricSummary {
	out := make([]MetricSummary, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		out = append(out, MetricSummary{
			Metric:  m,
			Average: RollingAverage(entries, m),
			Trend:   Trend(entries, m),
		})
	}
	return out
}
