package system

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/tui"
)

type TuiCmd struct {
	Console bool `help:"Only show reminders as the in-app banner instead of using the tray app."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	n := ctx.Notifier(false)
	if c.Console {
		// writing to the terminal would corrupt the alt screen
		ctx.Out = io.Discard
		n = ctx.Notifier(true)
	}
	model := tui.NewModel(ctx.Store, ctx.Selector, ctx.Scheduler(n), ctx.Clock)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
