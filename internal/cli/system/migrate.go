package system

import (
	"fmt"

	"github.com/julianstephens/wellday/internal/cli"
)

// versioned is implemented by the SQL-backed stores.
type versioned interface {
	SchemaVersion() (current, latest int, err error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	v, ok := ctx.Store.(versioned)
	if !ok {
		fmt.Fprintln(ctx.Out, "This storage backend has no schema to migrate.")
		return nil
	}

	before, latest, err := v.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if before >= latest {
		fmt.Fprintf(ctx.Out, "Database is up to date (schema version %d).\n", before)
		return nil
	}

	// Init applies pending migrations and is safe on an existing database
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	after, _, err := v.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	fmt.Fprintf(ctx.Out, "Migrated schema from version %d to %d.\n", before, after)
	return nil
}
