package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/storage/diskv"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing local storage before initialization."`
	Source string `help:"Source database path, diskv:// directory or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	// Initialize destination store
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Initialized wellday storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Fprintf(ctx.Out, "Migrating data from: %s\n", c.Source)
		source, err := cli.OpenStore(c.Source)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if err := c.migrateData(ctx, source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Fprintln(ctx.Out, "Migration completed successfully!")
	}

	return nil
}

// localPath returns the file or directory backing a local store.
func localPath(p storage.Provider) (string, bool) {
	switch p.(type) {
	case *sqlite.Store, *diskv.Store:
		return p.GetConfigPath(), true
	}
	return "", false
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	path, ok := localPath(ctx.Store)
	if !ok {
		return errors.New("--force only resets local storage; drop the PostgreSQL schema manually")
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	// Don't delete if it's the source (user error protection)
	if c.Source != "" {
		if src, err := cli.OpenStore(c.Source); err == nil {
			if srcPath, ok := localPath(src); ok {
				if absSource, err := filepath.Abs(srcPath); err == nil && absSource == path {
					return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
				}
			}
		}
	}

	if _, err := os.Stat(path); err == nil {
		// close first to release file locks
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing storage: %w", err)
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to delete existing storage: %w", err)
		}
		fmt.Fprintf(ctx.Out, "Deleted existing storage at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing storage: %w", err)
	}
	return nil
}

// migrateData copies settings and entries from source in insertion order.
// Entries whose date already exists at the destination are skipped.
func (c *InitCmd) migrateData(ctx *cli.Context, source storage.Provider) error {
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source storage: %w", err)
	}
	defer source.Close()

	fmt.Fprintln(ctx.Out, "  Migrating settings...")
	settings, err := source.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Fprintln(ctx.Out, "  Migrating entries...")
	entries, err := source.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to get entries from source: %w", err)
	}
	migrated, skipped := 0, 0
	for _, entry := range entries {
		err := ctx.Store.Append(entry)
		switch {
		case errors.Is(err, storage.ErrEntryExists):
			skipped++
		case err != nil:
			return fmt.Errorf("failed to add entry %s: %w", entry.Date, err)
		default:
			migrated++
		}
	}
	fmt.Fprintf(ctx.Out, "    Migrated %d entries", migrated)
	if skipped > 0 {
		fmt.Fprintf(ctx.Out, " (%d already present)", skipped)
	}
	fmt.Fprintln(ctx.Out)

	return nil
}
