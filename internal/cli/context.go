package cli

import (
	"io"
	"os"
	"time"

	"github.com/julianstephens/wellday/internal/analytics"
	"github.com/julianstephens/wellday/internal/backup"
	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/notifier"
	"github.com/julianstephens/wellday/internal/recommend"
	"github.com/julianstephens/wellday/internal/reminder"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
	"github.com/julianstephens/wellday/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Selector *recommend.Selector
	Clock    reminder.Clock
	Out      io.Writer
	In       io.Reader
}

// NewContext wires a store to the default catalog, the system clock and stdio.
func NewContext(store storage.Provider) *Context {
	return &Context{
		Store:    store,
		Selector: recommend.DefaultSelector(),
		Clock:    reminder.SystemClock{},
		Out:      os.Stdout,
		In:       os.Stdin,
	}
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only file-backed SQLite stores are backed up.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Now returns the current time in the configured timezone.
func (c *Context) Now() (time.Time, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Time{}, err
	}
	return utils.InTimezone(c.Clock.Now(), settings.Timezone)
}

// Today returns the user's current calendar date as a time and a YYYY-MM-DD string.
func (c *Context) Today() (time.Time, string, error) {
	now, err := c.Now()
	if err != nil {
		return time.Time{}, "", err
	}
	return now, now.Format(constants.DateFormat), nil
}

// Report loads the full history and builds the derived views for today.
func (c *Context) Report() (analytics.Report, error) {
	entries, err := c.Store.LoadAll()
	if err != nil {
		return analytics.Report{}, err
	}
	now, err := c.Now()
	if err != nil {
		return analytics.Report{}, err
	}
	return analytics.Build(entries, now)
}

// Notifier returns a notifier over the tray app, or the terminal when console is set.
func (c *Context) Notifier(console bool) *notifier.Notifier {
	var ch notifier.Channel = notifier.NewTray()
	if console {
		ch = notifier.NewConsole(c.Out)
	}
	return notifier.New(ch, c.Store)
}

// Scheduler returns a reminder scheduler that delivers through n.
func (c *Context) Scheduler(n *notifier.Notifier) *reminder.Scheduler {
	return reminder.New(c.Store, n, c.Clock)
}
