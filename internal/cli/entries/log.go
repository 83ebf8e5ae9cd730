package entries

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/recommend"
	"github.com/julianstephens/wellday/internal/render"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/utils"
)

type LogCmd struct {
	Mood   *int   `help:"Mood, 1 (very low) to 5 (very good)."`
	Energy *int   `help:"Energy, 1 to 5."`
	Sleep  *int   `help:"Sleep quality, 1 to 5."`
	Stress *int   `help:"Stress, 1 (calm) to 5 (overwhelmed)."`
	Note   string `help:"Optional free-text note."`
	Date   string `help:"Date to log (YYYY-MM-DD). Defaults to today."`
	NoForm bool   `help:"Fail instead of prompting for missing values." name:"no-form"`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	_, today, err := ctx.Today()
	if err != nil {
		return err
	}

	date := today
	if c.Date != "" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
		if c.Date > today {
			return fmt.Errorf("cannot log a check-in for a future date: %s", c.Date)
		}
		date = c.Date
	}

	if _, err := ctx.Store.GetEntryByDate(date); err == nil {
		return fmt.Errorf("%s: %w", date, storage.ErrEntryExists)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to check existing entry: %w", err)
	}

	snap := models.Snapshot{
		Mood:   deref(c.Mood),
		Energy: deref(c.Energy),
		Sleep:  deref(c.Sleep),
		Stress: deref(c.Stress),
	}
	note := c.Note
	if missing(snap) {
		if c.NoForm {
			return snap.Validate()
		}
		if err := promptSnapshot(&snap, &note); err != nil {
			return fmt.Errorf("check-in cancelled: %w", err)
		}
	}

	entry := models.NewEntry(uuid.NewString(), date, snap, strings.TrimSpace(note), ctx.Clock.Now())
	if err := ctx.Store.Append(entry); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	logger.Debug("Check-in saved", "date", date, "id", entry.ID)
	ctx.PerformAutomaticBackup()

	fmt.Fprintf(ctx.Out, "✓ Check-in saved for %s\n", date)
	fmt.Fprintln(ctx.Out, render.Snapshot(snap))

	if report, err := ctx.Report(); err == nil && report.Streak > 0 {
		fmt.Fprintf(ctx.Out, "Streak: %d day(s)\n", report.Streak)
	}

	return printRecommendation(ctx, snap)
}

func printRecommendation(ctx *cli.Context, snap models.Snapshot) error {
	res, err := ctx.Selector.Select(snap)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, render.Resource(res))
	if res.Urgency == models.UrgencyHigh {
		fmt.Fprintln(ctx.Out, render.EmergencyContacts(recommend.EmergencyContacts()))
	}
	return nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// missing reports whether any metric was left unset. Out-of-range values are
// not missing; Append rejects them.
func missing(s models.Snapshot) bool {
	for _, m := range models.Metrics {
		if m.Value(s) == 0 {
			return true
		}
	}
	return false
}
