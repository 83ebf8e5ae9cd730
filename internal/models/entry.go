package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	apperrors "github.com/julianstephens/wellday/internal/errors"
)

// Metric identifies one of the four self-reported wellness dimensions
type Metric string

const (
	MetricMood   Metric = "mood"
	MetricEnergy Metric = "energy"
	MetricSleep  Metric = "sleep"
	MetricStress Metric = "stress"
)

// Metrics lists every metric in display order.
var Metrics = []Metric{MetricMood, MetricEnergy, MetricSleep, MetricStress}

var metricLabels = map[Metric]string{
	MetricMood:   "Mood",
	MetricEnergy: "Energy",
	MetricSleep:  "Sleep quality",
	MetricStress: "Stress",
}

// Label returns the fixed English display label for the metric.
func (m Metric) Label() string {
	if l, ok := metricLabels[m]; ok {
		return l
	}
	return string(m)
}

// Inverted reports whether a higher value of the metric is worse.
func (m Metric) Inverted() bool {
	return m == MetricStress
}

// Value extracts the metric from a snapshot.
func (m Metric) Value(s Snapshot) int {
	switch m {
	case MetricMood:
		return s.Mood
	case MetricEnergy:
		return s.Energy
	case MetricSleep:
		return s.Sleep
	case MetricStress:
		return s.Stress
	default:
		return 0
	}
}

// Snapshot holds the four metric values of a single submission
type Snapshot struct {
	Mood   int `json:"mood"`
	Energy int `json:"energy"`
	Sleep  int `json:"sleep"`
	Stress int `json:"stress"`
}

// Validate checks every metric is present and within 1..5.
func (s Snapshot) Validate() error {
	for _, m := range Metrics {
		if err := ValidateMetric(m, m.Value(s)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMetric returns an error wrapping ErrInvalidMetric when value is outside 1..5.
// A zero value means the metric was never supplied.
func ValidateMetric(m Metric, value int) error {
	if value == 0 {
		return fmt.Errorf("%s is missing: %w", m, apperrors.ErrInvalidMetric)
	}
	if value < constants.MinMetric || value > constants.MaxMetric {
		return fmt.Errorf("%s=%d outside %d..%d: %w", m, value, constants.MinMetric, constants.MaxMetric, apperrors.ErrInvalidMetric)
	}
	return nil
}

// Entry is one day's wellness check-in. There is at most one entry per date
// and entries are never modified after they are saved.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Sleep     int       `json:"sleep"`
	Stress    int       `json:"stress"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot projects the entry onto its four metrics.
func (e Entry) Snapshot() Snapshot {
	return Snapshot{Mood: e.Mood, Energy: e.Energy, Sleep: e.Sleep, Stress: e.Stress}
}

// Day parses the entry date as midnight UTC.
func (e Entry) Day() (time.Time, error) {
	return time.Parse(constants.DateFormat, e.Date)
}

// Validate checks the date format and every metric.
func (e Entry) Validate() error {
	if _, err := e.Day(); err != nil {
		return fmt.Errorf("invalid date %q: %w", e.Date, apperrors.ErrInvalidMetric)
	}
	if err := e.Snapshot().Validate(); err != nil {
		return fmt.Errorf("entry %s: %w", e.Date, err)
	}
	return nil
}

// NewEntry builds an entry for date from a snapshot. The caller assigns the ID.
func NewEntry(id, date string, s Snapshot, note string, createdAt time.Time) Entry {
	return Entry{
		ID:        id,
		Date:      date,
		Mood:      s.Mood,
		Energy:    s.Energy,
		Sleep:     s.Sleep,
		Stress:    s.Stress,
		Note:      note,
		CreatedAt: createdAt,
	}
}
