package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

var specParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// CronSpec renders the reminder time and frequency as a five-field cron expression.
// It returns an empty spec when a custom frequency has no days selected.
func CronSpec(r models.ReminderSettings) (string, error) {
	t, err := time.Parse(constants.TimeFormat, r.Time)
	if err != nil {
		return "", fmt.Errorf("invalid reminder time %q: %w", r.Time, err)
	}

	var dow string
	switch r.Frequency {
	case models.FrequencyDaily:
		dow = "*"
	case models.FrequencyWeekdays:
		dow = "1-5"
	case models.FrequencyCustom:
		if len(r.CustomDays) == 0 {
			return "", nil
		}
		days := make([]string, len(r.CustomDays))
		for i, d := range r.CustomDays {
			days[i] = strconv.Itoa(int(d))
		}
		dow = strings.Join(days, ",")
	default:
		return "", fmt.Errorf("invalid reminder frequency %q", r.Frequency)
	}

	return fmt.Sprintf("%d %d * * %s", t.Minute(), t.Hour(), dow), nil
}

// NextOccurrence returns the next scheduled reminder slot strictly after after,
// in after's location. ok is false when reminders are disabled or no day is selected.
// It does not consider whether today was already logged or notified.
func NextOccurrence(r models.ReminderSettings, after time.Time) (next time.Time, ok bool, err error) {
	if !r.Enabled {
		return time.Time{}, false, nil
	}
	spec, err := CronSpec(r)
	if err != nil || spec == "" {
		return time.Time{}, false, err
	}
	sched, err := specParser.Parse(spec)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing reminder schedule %q: %w", spec, err)
	}
	return sched.Next(after), true, nil
}
