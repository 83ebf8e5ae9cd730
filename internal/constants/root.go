package constants

import "time"

const (
	AppName            = "wellday"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/wellday/wellday.db"
	Version            = "v0.1.0"

	// Environment variables
	EnvDBConnection = "WELLDAY_DB_CONNECTION"

	// Storage scheme prefixes
	PostgresPrefix    = "postgres://"
	PostgresAltPrefix = "postgresql://"
	DiskvPrefix       = "diskv://"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wellday-"
	BackupFileSuffix = ".db"

	// Metric bounds
	MinMetric = 1
	MaxMetric = 5

	// Analytics windows
	AverageWindow   = 7
	TrendWindow     = 3
	TrendThreshold  = 0.3
	WeeklySeriesLen = 7

	// Notify constants
	NotifyProbeTimeout     = 2 * time.Second
	NotifierLockfileName   = "wellday-notifier.lock"
	NotificationDurationMs = 10000
	TrayAppIdentifier      = "com.julianstephens.wellday"
	TrayExecutablePrefix   = "wellday-tray"
	ReminderTitle          = "wellday - daily check-in"
	ReminderBody           = "How are you feeling today? Take 20 seconds to log your wellbeing."

	// ReminderCheckSpec runs the reminder check at the top of every minute
	ReminderCheckSpec = "* * * * *"
)
