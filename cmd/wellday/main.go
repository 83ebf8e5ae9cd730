package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/cli/backups"
	"github.com/julianstephens/wellday/internal/cli/entries"
	"github.com/julianstephens/wellday/internal/cli/insights"
	"github.com/julianstephens/wellday/internal/cli/remind"
	"github.com/julianstephens/wellday/internal/cli/settings"
	"github.com/julianstephens/wellday/internal/cli/support"
	"github.com/julianstephens/wellday/internal/cli/system"
	"github.com/julianstephens/wellday/internal/constants"
	apperrors "github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/storage/diskv"
	"github.com/julianstephens/wellday/internal/storage/postgres"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path, diskv:// directory, PostgreSQL connection string, or 'postgres' to use the keyring. PostgreSQL credentials must NOT be embedded; use WELLDAY_DB_CONNECTION or the OS keyring." env:"WELLDAY_CONFIG" default:"~/.config/wellday/wellday.db"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize wellday storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`

	Log     entries.LogCmd     `cmd:"" help:"Record today's check-in."`
	History entries.HistoryCmd `cmd:"" help:"List past check-ins."`
	Show    entries.ShowCmd    `cmd:"" help:"Show the check-in for a day."`

	Stats   insights.StatsCmd   `cmd:"" help:"Show streaks, averages and trends."`
	Heatmap insights.HeatmapCmd `cmd:"" help:"Show a month calendar shaded by daily average."`
	Week    insights.WeekCmd    `cmd:"" help:"Show the last seven days."`

	Recommend support.RecommendCmd `cmd:"" help:"Recommend a support resource."`
	Resources support.ResourcesCmd `cmd:"" help:"List every support resource."`
	Activity  support.ActivityCmd  `cmd:"" help:"Show the steps of an activity."`

	Remind struct {
		Show       remind.ShowCmd       `cmd:"" help:"Show reminder settings and the next reminder." default:"1"`
		Set        remind.SetCmd        `cmd:"" help:"Change reminder settings."`
		Permission remind.PermissionCmd `cmd:"" help:"Request or deny notification permission."`
		Check      remind.CheckCmd      `cmd:"" help:"Run one reminder check."`
		Daemon     remind.DaemonCmd     `cmd:"" help:"Check reminders every minute until interrupted."`
		Test       remind.TestCmd       `cmd:"" help:"Send a test notification."`
	} `cmd:"" help:"Manage the daily reminder."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`

	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

// skipLoad lists commands that run before storage exists or do not need it.
var skipLoad = []string{"init", "keyring"}

func main() {
	// a .env file is optional
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily wellness check-ins with streaks, trends, support resources and reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store, err := cli.DefaultStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(store), Backend: backendName(store)}); err != nil {
		apperrors.Fatal(err)
	}
	logger.Debug("Starting wellday", "command", ctx.Command(), "storage", store.GetConfigPath())

	if needsLoad(ctx.Command()) {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		if s, err := store.GetSettings(); err == nil {
			if err := logger.SetTimezone(s.Timezone); err != nil {
				logger.Warn("Keeping system timezone for logs", "error", err)
			}
		}
	}
	defer store.Close()

	if err := ctx.Run(cli.NewContext(store)); err != nil {
		_ = store.Close()
		apperrors.Fatal(err)
	}
}

func needsLoad(command string) bool {
	for _, name := range skipLoad {
		if strings.HasPrefix(command, name) {
			return false
		}
	}
	return true
}

func backendName(store storage.Provider) string {
	switch store.(type) {
	case *sqlite.Store:
		return "sqlite"
	case *postgres.Store:
		return "postgres"
	case *diskv.Store:
		return "diskv"
	default:
		return "unknown"
	}
}

// logDir keeps logs next to a SQLite database and in the default config
// directory for every other backend.
func logDir(store storage.Provider) string {
	if s, ok := store.(*sqlite.Store); ok {
		return filepath.Dir(s.GetConfigPath())
	}
	dir, err := cli.ExpandPath(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		return "."
	}
	return dir
}
