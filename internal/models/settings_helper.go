package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/wellday/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingReminderEnabled:
			settings.Reminder.Enabled = value == "true"
		case constants.SettingReminderTime:
			settings.Reminder.Time = value
		case constants.SettingReminderFrequency:
			settings.Reminder.Frequency = Frequency(value)
		case constants.SettingReminderCustomDays:
			days, err := ParseWeekdays(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.Reminder.CustomDays = days
		case constants.SettingReminderLastNotified:
			settings.Reminder.LastNotifiedDate = value
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingNotificationPermission:
			settings.NotificationPermission = PermissionState(value)
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingReminderEnabled:        strconv.FormatBool(settings.Reminder.Enabled),
		constants.SettingReminderTime:           settings.Reminder.Time,
		constants.SettingReminderFrequency:      string(settings.Reminder.Frequency),
		constants.SettingReminderCustomDays:     FormatWeekdays(settings.Reminder.CustomDays),
		constants.SettingReminderLastNotified:   settings.Reminder.LastNotifiedDate,
		constants.SettingTimezone:               settings.Timezone,
		constants.SettingNotificationPermission: string(settings.NotificationPermission),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
// Enabled is left untouched because false is a meaningful stored value.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Reminder.Time == "" {
		settings.Reminder.Time = constants.DefaultReminderTime
	}
	if settings.Reminder.Frequency == "" {
		settings.Reminder.Frequency = Frequency(constants.DefaultReminderFrequency)
	}
	if settings.Reminder.CustomDays == nil {
		days, _ := ParseWeekdays(constants.DefaultReminderCustomDays)
		settings.Reminder.CustomDays = days
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.NotificationPermission == "" {
		settings.NotificationPermission = PermissionState(constants.DefaultPermission)
	}
}

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseWeekdays parses a comma-separated list of weekday names or numbers (0=Sunday).
// An empty string yields an empty, non-nil set.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	weekdays := []time.Weekday{}
	if strings.TrimSpace(s) == "" {
		return weekdays, nil
	}

	seen := make(map[time.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := weekdayNames[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			wd = time.Weekday(num)
		}
		if !seen[wd] {
			seen[wd] = true
			weekdays = append(weekdays, wd)
		}
	}
	return weekdays, nil
}

// FormatWeekdays renders weekdays in the numeric form stored in settings.
func FormatWeekdays(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// DescribeWeekdays renders weekdays as short English names.
func DescribeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return "none"
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.String()[:3]
	}
	return strings.Join(parts, ",")
}
