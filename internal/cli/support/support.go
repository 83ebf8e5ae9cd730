package support

import (
	"fmt"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/recommend"
	"github.com/julianstephens/wellday/internal/render"
)

// RecommendCmd picks a resource for the given values, or for the latest check-in.
type RecommendCmd struct {
	Mood   *int `help:"Mood, 1 to 5."`
	Energy *int `help:"Energy, 1 to 5."`
	Sleep  *int `help:"Sleep quality, 1 to 5."`
	Stress *int `help:"Stress, 1 to 5."`
}

func (c *RecommendCmd) Run(ctx *cli.Context) error {
	var snap models.Snapshot
	if c.Mood == nil && c.Energy == nil && c.Sleep == nil && c.Stress == nil {
		entries, err := ctx.Store.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		if len(entries) == 0 {
			return fmt.Errorf("no check-ins yet; pass --mood, --energy, --sleep and --stress or run 'wellday log'")
		}
		latest := entries[len(entries)-1]
		fmt.Fprintf(ctx.Out, "Based on your check-in for %s:\n\n", latest.Date)
		snap = latest.Snapshot()
	} else {
		snap = models.Snapshot{Mood: value(c.Mood), Energy: value(c.Energy), Sleep: value(c.Sleep), Stress: value(c.Stress)}
	}

	res, err := ctx.Selector.Select(snap)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, render.Resource(res))
	if res.Urgency == models.UrgencyHigh {
		fmt.Fprintln(ctx.Out, render.EmergencyContacts(recommend.EmergencyContacts()))
	}
	return nil
}

func value(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

type ResourcesCmd struct{}

func (c *ResourcesCmd) Run(ctx *cli.Context) error {
	for i, r := range ctx.Selector.Catalog() {
		if i > 0 {
			fmt.Fprintln(ctx.Out)
		}
		fmt.Fprintln(ctx.Out, render.Resource(r))
	}
	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, render.EmergencyContacts(recommend.EmergencyContacts()))
	return nil
}

type ActivityCmd struct {
	ID string `arg:"" help:"Activity ID, as listed by 'wellday resources'."`
}

func (c *ActivityCmd) Run(ctx *cli.Context) error {
	a, owner, ok := ctx.Selector.Activity(c.ID)
	if !ok {
		return fmt.Errorf("unknown activity %q", c.ID)
	}
	fmt.Fprintln(ctx.Out, render.Activity(a))
	fmt.Fprintf(ctx.Out, "\nPart of %s.\n", owner.Title)
	return nil
}
