package insights

import (
	"fmt"

	"github.com/julianstephens/wellday/internal/analytics"
	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/render"
	"github.com/julianstephens/wellday/internal/utils"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	report, err := ctx.Report()
	if err != nil {
		return fmt.Errorf("failed to build statistics: %w", err)
	}
	if report.Total == 0 {
		fmt.Fprintln(ctx.Out, "No check-ins yet. Run 'wellday log' to add one.")
		return nil
	}

	fmt.Fprintln(ctx.Out, render.Overview(report))
	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, render.Summaries(report.Summaries))
	if len(report.Insights) > 0 {
		fmt.Fprintln(ctx.Out)
		fmt.Fprintln(ctx.Out, render.Insights(report.Insights))
	}
	return nil
}

type HeatmapCmd struct {
	Month string `help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *HeatmapCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	if err := analytics.Validate(entries); err != nil {
		return err
	}

	month, err := ctx.Now()
	if err != nil {
		return err
	}
	if c.Month != "" {
		if month, err = utils.ParseMonth(c.Month); err != nil {
			return fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
		}
	}

	fmt.Fprintln(ctx.Out, render.Heatmap(analytics.MonthGrid(entries, month), month))
	return nil
}

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	report, err := ctx.Report()
	if err != nil {
		return fmt.Errorf("failed to build weekly view: %w", err)
	}
	fmt.Fprintln(ctx.Out, render.Week(report.Week))
	return nil
}
