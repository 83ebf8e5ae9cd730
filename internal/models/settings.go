package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/wellday/internal/constants"
)

// Frequency selects which weekdays the reminder may fire on
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyCustom   Frequency = "custom"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekdays, FrequencyCustom:
		return true
	}
	return false
}

// PermissionState is the notification channel permission as reported by the platform
type PermissionState string

const (
	PermissionGranted      PermissionState = "granted"
	PermissionDenied       PermissionState = "denied"
	PermissionUndetermined PermissionState = "undetermined"
)

// ReminderSettings controls the daily check-in reminder
type ReminderSettings struct {
	Enabled          bool           `json:"enabled"`
	Time             string         `json:"time"`                         // HH:MM in the configured timezone
	Frequency        Frequency      `json:"frequency"`                    // daily, weekdays, or custom
	CustomDays       []time.Weekday `json:"custom_days"`                  // used when Frequency is custom
	LastNotifiedDate string         `json:"last_notified_date,omitempty"` // YYYY-MM-DD of the last fired reminder
}

// NormalizeTime parses a clock time such as "8:00" and returns it zero-padded
// as HH:MM, the form reminder ticks are compared against.
func NormalizeTime(s string) (string, error) {
	t, err := time.Parse(constants.TimeFormat, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid reminder time %q: expected HH:MM", s)
	}
	return t.Format(constants.TimeFormat), nil
}

// Validate checks the time format, frequency, and custom day range.
// The time must already be zero-padded.
func (r ReminderSettings) Validate() error {
	if norm, err := NormalizeTime(r.Time); err != nil || norm != r.Time {
		return fmt.Errorf("invalid reminder time %q: expected HH:MM", r.Time)
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("invalid reminder frequency %q", r.Frequency)
	}
	for _, d := range r.CustomDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("invalid custom weekday %d", d)
		}
	}
	return nil
}

// HasCustomDay reports whether d is in the custom day set.
func (r ReminderSettings) HasCustomDay(d time.Weekday) bool {
	return slices.Contains(r.CustomDays, d)
}

// Settings represents application-wide settings
type Settings struct {
	Reminder               ReminderSettings `json:"reminder"`
	Timezone               string           `json:"timezone"`                // IANA timezone name or "Local"
	NotificationPermission PermissionState  `json:"notification_permission"` // last known permission result
}

// DefaultSettings returns the settings written on first init.
func DefaultSettings() Settings {
	s := Settings{Reminder: ReminderSettings{Enabled: constants.DefaultReminderEnabled}}
	ApplyDefaultSettings(&s)
	return s
}
