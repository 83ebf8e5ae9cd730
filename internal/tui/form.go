package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

var scaleHints = map[models.Metric][2]string{
	models.MetricMood:   {"very low", "very good"},
	models.MetricEnergy: {"exhausted", "full of energy"},
	models.MetricSleep:  {"very poor", "excellent"},
	models.MetricStress: {"calm", "overwhelmed"},
}

// NewCheckInForm builds the check-in form. Metrics already set on s are not asked again.
func NewCheckInForm(s *models.Snapshot, note *string) *huh.Form {
	targets := map[models.Metric]*int{
		models.MetricMood:   &s.Mood,
		models.MetricEnergy: &s.Energy,
		models.MetricSleep:  &s.Sleep,
		models.MetricStress: &s.Stress,
	}

	var fields []huh.Field
	for _, m := range models.Metrics {
		if *targets[m] != 0 {
			continue
		}
		fields = append(fields, metricSelect(m, targets[m]))
	}
	fields = append(fields, huh.NewText().
		Title("Anything else? (optional)").
		CharLimit(500).
		Value(note))

	return huh.NewForm(huh.NewGroup(fields...))
}

var metricRange = fmt.Sprintf("%d-%d", constants.MinMetric, constants.MaxMetric)

func metricSelect(m models.Metric, value *int) *huh.Select[int] {
	hint := scaleHints[m]
	opts := make([]huh.Option[int], 0, constants.MaxMetric)
	for v := constants.MinMetric; v <= constants.MaxMetric; v++ {
		label := fmt.Sprintf("%d", v)
		switch v {
		case constants.MinMetric:
			label += " - " + hint[0]
		case constants.MaxMetric:
			label += " - " + hint[1]
		}
		opts = append(opts, huh.NewOption(label, v))
	}
	return huh.NewSelect[int]().
		Title(fmt.Sprintf("%s (%s)", m.Label(), metricRange)).
		Options(opts...).
		Value(value)
}
