package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
)

const entryColumns = `id, date, mood, energy, sleep, stress, note, created_at`

func (s *Store) Append(entry models.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ID, entry.Date, entry.Mood, entry.Energy, entry.Sleep, entry.Stress,
		entry.Note, entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: entries.date") {
			return fmt.Errorf("%w: %s", storage.ErrEntryExists, entry.Date)
		}
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (s *Store) GetEntryByDate(date string) (models.Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE date = ?`, date)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, fmt.Errorf("%w: %s", storage.ErrNotFound, date)
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

func (s *Store) LoadAll() ([]models.Entry, error) {
	rows, err := s.db.Query(`SELECT ` + entryColumns + ` FROM entries ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (models.Entry, error) {
	var entry models.Entry
	var createdAtStr string
	if err := row.Scan(
		&entry.ID, &entry.Date, &entry.Mood, &entry.Energy, &entry.Sleep, &entry.Stress,
		&entry.Note, &createdAtStr,
	); err != nil {
		return models.Entry{}, err
	}

	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	entry.CreatedAt = createdAt
	return entry, nil
}
