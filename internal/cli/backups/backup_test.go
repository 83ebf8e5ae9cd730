package backups

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/wellday/internal/backup"
	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage/diskv"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	ctx := cli.NewContext(store)
	ctx.Out = &out
	return ctx, store, &out
}

func TestBackupCommandsRequireSQLite(t *testing.T) {
	store := diskv.NewStore(filepath.Join(t.TempDir(), "data"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	ctx := cli.NewContext(store)
	ctx.Out = &bytes.Buffer{}

	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, errNotFileStore) {
		t.Errorf("create error = %v, want errNotFileStore", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); !errors.Is(err, errNotFileStore) {
		t.Errorf("list error = %v, want errNotFileStore", err)
	}
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, _, out := setupTestDB(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: wellday-") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, store, out := setupTestDB(t)

	mgr := backup.NewManager(store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	e := models.NewEntry("a", "2024-03-15", models.Snapshot{Mood: 3, Energy: 3, Sleep: 3, Stress: 3}, "", time.Now())
	if err := store.Append(e); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	// declining leaves the database alone
	ctx.In = strings.NewReader("n\n")
	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(backupPath)}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Fatalf("expected cancellation, got:\n%s", out.String())
	}

	ctx.In = strings.NewReader("y\n")
	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(backupPath)}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if err := store.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	entries, err := store.LoadAll()
	if err != nil {
		t.Fatalf("load entries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("restored database has %d entries, want 0", len(entries))
	}
}

func TestBackupRestoreRejectsGarbage(t *testing.T) {
	ctx, store, _ := setupTestDB(t)

	junk := filepath.Join(filepath.Dir(store.GetConfigPath()), "junk.db")
	if err := os.WriteFile(junk, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := (&BackupRestoreCmd{BackupFile: junk, Yes: true}).Run(ctx); err == nil {
		t.Fatal("expected garbage backup to be rejected")
	}
	if err := (&BackupRestoreCmd{BackupFile: "missing.db", Yes: true}).Run(ctx); err == nil {
		t.Fatal("expected missing backup to be rejected")
	}
}
