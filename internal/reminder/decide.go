// Package reminder decides when the daily check-in reminder is due and
// records that it fired. It owns no timer; hosts call it once per tick.
package reminder

import (
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

// Reason explains a reminder decision
type Reason string

const (
	ReasonDisabled        Reason = "disabled"
	ReasonPermission      Reason = "permission"
	ReasonNotScheduledDay Reason = "not-scheduled-day"
	ReasonNotTime         Reason = "not-time"
	ReasonAlreadyNotified Reason = "already-notified"
	ReasonAlreadyLogged   Reason = "already-logged"
	ReasonDue             Reason = "due"
)

// IsScheduledDay applies the frequency predicate to a weekday.
func IsScheduledDay(r models.ReminderSettings, wd time.Weekday) bool {
	switch r.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekdays:
		return wd >= time.Monday && wd <= time.Friday
	case models.FrequencyCustom:
		return r.HasCustomDay(wd)
	default:
		return false
	}
}

// Decide evaluates every firing condition for now, which must already be in
// the user's timezone. The reason names the first condition that failed.
func Decide(now time.Time, r models.ReminderSettings, todayHasEntry bool) (bool, Reason) {
	switch {
	case !r.Enabled:
		return false, ReasonDisabled
	case !IsScheduledDay(r, now.Weekday()):
		return false, ReasonNotScheduledDay
	case now.Format(constants.TimeFormat) != reminderTime(r):
		return false, ReasonNotTime
	case r.LastNotifiedDate == now.Format(constants.DateFormat):
		return false, ReasonAlreadyNotified
	case todayHasEntry:
		return false, ReasonAlreadyLogged
	}
	return true, ReasonDue
}

// reminderTime is the stored time zero-padded, so settings written before
// normalization still match a tick.
func reminderTime(r models.ReminderSettings) string {
	if t, err := models.NormalizeTime(r.Time); err == nil {
		return t
	}
	return r.Time
}

// ShouldFireNow reports whether the reminder is due at now.
func ShouldFireNow(now time.Time, r models.ReminderSettings, todayHasEntry bool) bool {
	fire, _ := Decide(now, r, todayHasEntry)
	return fire
}

// RecordFired marks today as notified so later ticks on the same day stay idle.
func RecordFired(r *models.ReminderSettings, today time.Time) {
	r.LastNotifiedDate = today.Format(constants.DateFormat)
}
