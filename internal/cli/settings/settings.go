package settings

import (
	"fmt"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone *string `help:"IANA timezone used to decide what 'today' is, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		r := settings.Reminder
		fmt.Fprintln(ctx.Out, "Current Settings:")
		fmt.Fprintf(ctx.Out, "  Timezone:          %s\n", settings.Timezone)
		fmt.Fprintf(ctx.Out, "  Storage:           %s\n", ctx.Store.GetConfigPath())
		fmt.Fprintln(ctx.Out, "\nReminder Settings:")
		fmt.Fprintf(ctx.Out, "  Enabled:           %v\n", r.Enabled)
		fmt.Fprintf(ctx.Out, "  Time:              %s\n", r.Time)
		fmt.Fprintf(ctx.Out, "  Frequency:         %s\n", r.Frequency)
		fmt.Fprintf(ctx.Out, "  Custom Days:       %s\n", models.DescribeWeekdays(r.CustomDays))
		fmt.Fprintf(ctx.Out, "  Permission:        %s\n", settings.NotificationPermission)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Fprintln(ctx.Out, "Settings updated successfully.")
	} else {
		fmt.Fprintln(ctx.Out, "No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
