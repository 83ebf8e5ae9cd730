package remind

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/constants"
	apperrors "github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/reminder"
	"github.com/julianstephens/wellday/internal/storage"
)

var reasonText = map[reminder.Reason]string{
	reminder.ReasonDisabled:        "reminders are disabled",
	reminder.ReasonPermission:      "notifications are not permitted",
	reminder.ReasonNotScheduledDay: "today is not a reminder day",
	reminder.ReasonNotTime:         "it is not the reminder time",
	reminder.ReasonAlreadyNotified: "already reminded today",
	reminder.ReasonAlreadyLogged:   "today's check-in is already logged",
	reminder.ReasonDue:             "reminder is due",
}

func describe(r reminder.Reason) string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return string(r)
}

func describeSchedule(r models.ReminderSettings) string {
	if r.Frequency == models.FrequencyCustom {
		return fmt.Sprintf("%s (%s)", r.Frequency, models.DescribeWeekdays(r.CustomDays))
	}
	return string(r.Frequency)
}

type ShowCmd struct {
	Console bool `help:"Report permission for terminal notifications instead of the tray app."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	now, err := ctx.Now()
	if err != nil {
		return err
	}
	n := ctx.Notifier(c.Console)
	r := settings.Reminder

	lastNotified := r.LastNotifiedDate
	if lastNotified == "" {
		lastNotified = "never"
	}

	fmt.Fprintln(ctx.Out, "Reminder:")
	fmt.Fprintf(ctx.Out, "  Enabled:       %v\n", r.Enabled)
	fmt.Fprintf(ctx.Out, "  Time:          %s\n", r.Time)
	fmt.Fprintf(ctx.Out, "  Frequency:     %s\n", describeSchedule(r))
	fmt.Fprintf(ctx.Out, "  Timezone:      %s\n", settings.Timezone)
	fmt.Fprintf(ctx.Out, "  Permission:    %s (%s)\n", n.PermissionState(), n.Channel().Name())
	fmt.Fprintf(ctx.Out, "  Last notified: %s\n", lastNotified)

	next, ok, err := reminder.NextOccurrence(r, now)
	switch {
	case err != nil:
		return err
	case ok:
		fmt.Fprintf(ctx.Out, "  Next:          %s\n", next.Format("Mon 2006-01-02 15:04"))
	default:
		fmt.Fprintf(ctx.Out, "  Next:          none scheduled\n")
	}
	return nil
}

type SetCmd struct {
	Enabled   *bool   `help:"Enable or disable the daily reminder."`
	Time      *string `help:"Reminder time (HH:MM)."`
	Frequency *string `help:"daily, weekdays, or custom."`
	Days      *string `help:"Days for the custom frequency, e.g. mon,wed,fri or 1,3,5. Implies --frequency=custom."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	r := settings.Reminder
	updated := false
	if c.Enabled != nil {
		r.Enabled = *c.Enabled
		updated = true
	}
	if c.Time != nil {
		r.Time = *c.Time
		updated = true
	}
	if c.Days != nil {
		days, err := models.ParseWeekdays(*c.Days)
		if err != nil {
			return err
		}
		r.CustomDays = days
		r.Frequency = models.FrequencyCustom
		updated = true
	}
	if c.Frequency != nil && *c.Frequency != "" {
		r.Frequency = models.Frequency(*c.Frequency)
		updated = true
	}

	if !updated {
		fmt.Fprintln(ctx.Out, "No changes specified. Use 'wellday remind show' to view the reminder or flags to update it.")
		return nil
	}
	// older settings may hold an unpadded time
	t, err := models.NormalizeTime(r.Time)
	if err != nil {
		return err
	}
	r.Time = t
	if err := r.Validate(); err != nil {
		return err
	}
	if r.Frequency == models.FrequencyCustom && len(r.CustomDays) == 0 {
		fmt.Fprintln(ctx.Out, "⚠ No custom days selected; the reminder will never fire.")
	}

	settings.Reminder = r
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintln(ctx.Out, "Reminder updated successfully.")
	return nil
}

type PermissionCmd struct {
	Deny    bool `help:"Turn reminder notifications off."`
	Console bool `help:"Use terminal notifications instead of the tray app."`
}

func (c *PermissionCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	state := models.PermissionDenied
	if !c.Deny {
		var probeErr error
		state, probeErr = ctx.Notifier(c.Console).RequestPermission()
		if probeErr != nil {
			fmt.Fprintf(ctx.Out, "❌ Notifications unavailable: %v\n", probeErr)
		}
	}

	settings.NotificationPermission = state
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if state == models.PermissionGranted {
		fmt.Fprintln(ctx.Out, "✓ Reminder notifications allowed.")
	} else {
		fmt.Fprintln(ctx.Out, "Reminder notifications denied. Reminders will stay idle.")
	}
	return nil
}

type CheckCmd struct {
	DryRun  bool `help:"Only report whether the reminder is due; never deliver or record it." name:"dry-run"`
	Console bool `help:"Deliver to the terminal instead of the tray app."`
}

func (c *CheckCmd) Run(ctx *cli.Context) error {
	n := ctx.Notifier(c.Console)
	if c.DryRun {
		return c.dryRun(ctx, n.PermissionState())
	}

	res, err := ctx.Scheduler(n).Check()
	if err != nil && res.State != reminder.Fired {
		return err
	}
	if res.State == reminder.Fired {
		fmt.Fprintf(ctx.Out, "Reminder sent for %s.\n", res.Date)
		return err
	}
	fmt.Fprintf(ctx.Out, "Idle: %s.\n", describe(res.Reason))
	return nil
}

func (c *CheckCmd) dryRun(ctx *cli.Context, permission models.PermissionState) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	now, today, err := ctx.Today()
	if err != nil {
		return err
	}
	if !settings.Reminder.Enabled {
		fmt.Fprintf(ctx.Out, "Would stay idle: %s.\n", describe(reminder.ReasonDisabled))
		return nil
	}
	if permission != models.PermissionGranted {
		fmt.Fprintf(ctx.Out, "Would stay idle: %s.\n", describe(reminder.ReasonPermission))
		return nil
	}

	hasEntry := true
	if _, err := ctx.Store.GetEntryByDate(today); errors.Is(err, storage.ErrNotFound) {
		hasEntry = false
	} else if err != nil {
		return err
	}

	if fire, reason := reminder.Decide(now, settings.Reminder, hasEntry); fire {
		fmt.Fprintln(ctx.Out, "Would fire now.")
	} else {
		fmt.Fprintf(ctx.Out, "Would stay idle: %s.\n", describe(reason))
	}
	return nil
}

type DaemonCmd struct {
	Console bool `help:"Deliver to the terminal instead of the tray app."`
}

func (c *DaemonCmd) Run(ctx *cli.Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n := ctx.Notifier(c.Console)
	fmt.Fprintf(ctx.Out, "Reminder daemon running (%s). Press Ctrl+C to stop.\n", n.Channel().Name())
	logger.Info("Reminder daemon started", "channel", n.Channel().Name())

	err := reminder.Run(sigCtx, ctx.Scheduler(n), func(res reminder.Result, err error) {
		if res.State == reminder.Fired {
			fmt.Fprintf(ctx.Out, "Reminder sent for %s.\n", res.Date)
		}
	})
	logger.Info("Reminder daemon stopped")
	return err
}

type TestCmd struct {
	Console bool `help:"Deliver to the terminal instead of the tray app."`
}

func (c *TestCmd) Run(ctx *cli.Context) error {
	n := ctx.Notifier(c.Console)
	if state := n.PermissionState(); state != models.PermissionGranted {
		return fmt.Errorf("%w: permission is %s, run 'wellday remind permission' first", apperrors.ErrPermissionUnavailable, state)
	}
	if err := n.Deliver(constants.ReminderTitle, constants.ReminderBody); err != nil {
		return fmt.Errorf("failed to send test notification: %w", err)
	}
	fmt.Fprintf(ctx.Out, "✓ Test notification sent via %s.\n", n.Channel().Name())
	return nil
}
