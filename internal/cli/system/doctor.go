package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/wellday/internal/analytics"
	"github.com/julianstephens/wellday/internal/backup"
	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
	"github.com/julianstephens/wellday/internal/utils"
)

type healthChecker interface {
	HealthCheck() error
}

type DoctorCmd struct {
	Console bool `help:"Check terminal notifications instead of the tray app."`
}

type check struct {
	name string
	// needsDB checks are skipped when the database is unreachable
	needsDB bool
	// warnOnly failures do not fail the run
	warnOnly bool
	run      func(*cli.Context) error
}

func (cmd *DoctorCmd) checks() []check {
	return []check{
		{"Schema version", true, false, checkSchemaVersion},
		{"Migrations complete", true, false, checkMigrationsComplete},
		{"Backups present", false, true, checkBackupsPresent},
		{"Data validation", true, false, checkValidation},
		{"Settings", true, false, checkSettings},
		{"Clock/timezone", true, false, checkClockTimezone},
		{"Notifications", true, true, func(ctx *cli.Context) error { return checkNotifications(ctx, cmd.Console) }},
	}
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Database reachable: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range cmd.checks() {
		if c.needsDB && !dbReachable {
			fmt.Fprintf(ctx.Out, "⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		var s skipped
		switch {
		case errors.As(err, &s):
			fmt.Fprintf(ctx.Out, "⊘ %s: SKIPPED (%s)\n", c.name, s)
		case err != nil && c.warnOnly:
			fmt.Fprintf(ctx.Out, "⚠ %s: WARNING\n", c.name)
			fmt.Fprintf(ctx.Out, "   %v\n", err)
		case err != nil:
			fmt.Fprintf(ctx.Out, "❌ %s: FAIL\n", c.name)
			fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
			hasError = true
		default:
			fmt.Fprintf(ctx.Out, "✓ %s: OK\n", c.name)
		}
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

// skipped marks a check that does not apply to this setup.
type skipped string

func (s skipped) Error() string { return string(s) }

func skip(reason string) error { return skipped(reason) }

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if hc, ok := ctx.Store.(healthChecker); ok {
		return hc.HealthCheck()
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	v, ok := ctx.Store.(versioned)
	if !ok {
		return skip("no schema for this backend")
	}
	current, latest, err := v.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	v, ok := ctx.Store.(versioned)
	if !ok {
		return skip("no schema for this backend")
	}
	current, latest, err := v.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d - run 'wellday migrate'", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return skip("backups only apply to the SQLite file store")
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'wellday backup create'")
	}
	return nil
}

// checkValidation runs every stored entry through the analytics validator:
// malformed dates, out-of-range metrics and duplicate dates all fail.
func checkValidation(ctx *cli.Context) error {
	entries, err := ctx.Store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	return analytics.Validate(entries)
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := settings.Reminder.Validate(); err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	_, err := ctx.Now()
	return err
}

func checkNotifications(ctx *cli.Context, console bool) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.Reminder.Enabled {
		return skip("reminders disabled")
	}
	n := ctx.Notifier(console)
	if state := n.PermissionState(); state != models.PermissionGranted {
		if probe := n.Channel().Available(); probe != nil {
			return fmt.Errorf("permission is %s: %v", state, probe)
		}
		return fmt.Errorf("permission is %s - run 'wellday remind permission'", state)
	}
	return nil
}
