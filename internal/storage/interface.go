package storage

import (
	"errors"

	"github.com/julianstephens/wellday/internal/models"
)

var (
	// ErrNotFound is returned when no entry exists for a date
	ErrNotFound = errors.New("entry not found")
	// ErrEntryExists is returned when appending a second entry for a date
	ErrEntryExists = errors.New("an entry already exists for this date")
	// ErrNotInitialized is returned by Load before init has been run
	ErrNotInitialized = errors.New("storage not initialized, run 'wellday init' first")
)

// EntryStore is the append-only daily entry log.
type EntryStore interface {
	// LoadAll returns every entry in insertion order.
	LoadAll() ([]models.Entry, error)
	// Append validates and saves a new entry. A second entry for the same
	// date fails with ErrEntryExists.
	Append(models.Entry) error
	// GetEntryByDate returns the entry for date or ErrNotFound.
	GetEntryByDate(date string) (models.Entry, error)
}

// SettingsStore persists user settings.
type SettingsStore interface {
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error
	// ClaimReminderDate atomically sets the reminder's last-notified date to
	// date when it holds a different value and reports whether it changed.
	ClaimReminderDate(date string) (bool, error)
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	EntryStore
	SettingsStore

	// Utils
	GetConfigPath() string
}
