package constants

const (
	// Reminder Settings
	SettingReminderEnabled      = "reminder_enabled"
	SettingReminderTime         = "reminder_time"
	SettingReminderFrequency    = "reminder_frequency"
	SettingReminderCustomDays   = "reminder_custom_days"
	SettingReminderLastNotified = "reminder_last_notified"

	// General Settings
	SettingTimezone               = "timezone"
	SettingNotificationPermission = "notification_permission"

	// Default Settings Values
	DefaultReminderEnabled    = true
	DefaultReminderTime       = "20:00"
	DefaultReminderFrequency  = "daily"
	DefaultReminderCustomDays = "1,2,3,4,5" // Monday through Friday
	DefaultTimezone           = "Local"     // Use system local timezone by default
	DefaultPermission         = "undetermined"
)
