package entries

import (
	"errors"
	"fmt"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/render"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/utils"
)

type HistoryCmd struct {
	Limit int `help:"Show only the most recent N entries (0 for all)." default:"14"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(ctx.Out, "No check-ins yet. Run 'wellday log' to add one.")
		return nil
	}

	start := 0
	if c.Limit > 0 && len(entries) > c.Limit {
		start = len(entries) - c.Limit
	}
	fmt.Fprintf(ctx.Out, "Check-ins (%d of %d):\n\n", len(entries)-start, len(entries))
	for i := len(entries) - 1; i >= start; i-- {
		fmt.Fprintln(ctx.Out, render.Entry(entries[i]))
	}
	return nil
}

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		_, today, err := ctx.Today()
		if err != nil {
			return err
		}
		date = today
	} else if _, err := utils.ParseDate(date); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}

	entry, err := ctx.Store.GetEntryByDate(date)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(ctx.Out, "No check-in for %s.\n", date)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.Out, render.Entry(entry))
	return printRecommendation(ctx, entry.Snapshot())
}
