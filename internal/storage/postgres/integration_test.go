package postgres

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
)

// TestStore_Integration runs against a real database.
// Example: POSTGRES_TEST_URL="postgres://wellday_user@localhost:5432/wellday_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	if _, err := store.db.Exec("TRUNCATE entries"); err != nil {
		t.Fatalf("Failed to reset entries: %v", err)
	}

	t.Run("Settings", func(t *testing.T) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		settings.Reminder.Time = "06:45"
		settings.Reminder.LastNotifiedDate = ""
		if err := store.SaveSettings(settings); err != nil {
			t.Fatalf("Failed to save settings: %v", err)
		}
		got, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		if got.Reminder.Time != "06:45" {
			t.Errorf("Expected reminder time 06:45, got %s", got.Reminder.Time)
		}
	})

	t.Run("ClaimReminderDate", func(t *testing.T) {
		date := time.Now().Format("2006-01-02")
		first, err := store.ClaimReminderDate(date)
		if err != nil || !first {
			t.Fatalf("first claim = %v, %v", first, err)
		}
		second, err := store.ClaimReminderDate(date)
		if err != nil || second {
			t.Errorf("second claim = %v, %v", second, err)
		}
	})

	t.Run("Entries", func(t *testing.T) {
		snap := models.Snapshot{Mood: 4, Energy: 3, Sleep: 5, Stress: 2}
		// timestamptz keeps microseconds
		entry := models.NewEntry(uuid.NewString(), "2024-03-15", snap, "ok", time.Now().Truncate(time.Microsecond))
		if err := store.Append(entry); err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		dup := models.NewEntry(uuid.NewString(), "2024-03-15", snap, "", time.Now())
		if err := store.Append(dup); !errors.Is(err, storage.ErrEntryExists) {
			t.Errorf("duplicate Append error = %v, want ErrEntryExists", err)
		}

		got, err := store.GetEntryByDate("2024-03-15")
		if err != nil {
			t.Fatalf("GetEntryByDate failed: %v", err)
		}
		assertEntryEqual(t, got, entry)

		all, err := store.LoadAll()
		if err != nil || len(all) != 1 {
			t.Fatalf("LoadAll = %d entries, %v", len(all), err)
		}
		assertEntryEqual(t, all[0], entry)
	})
}

func assertEntryEqual(t *testing.T, got, want models.Entry) {
	t.Helper()
	if got.ID != want.ID || got.Date != want.Date || got.Note != want.Note {
		t.Errorf("entry %s identity = {%s %s %q}, want {%s %s %q}", want.Date, got.ID, got.Date, got.Note, want.ID, want.Date, want.Note)
	}
	if got.Snapshot() != want.Snapshot() {
		t.Errorf("entry %s metrics = %+v, want %+v", want.Date, got.Snapshot(), want.Snapshot())
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("entry %s created_at = %v, want %v", want.Date, got.CreatedAt, want.CreatedAt)
	}
}
