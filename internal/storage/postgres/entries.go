package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
)

const (
	entryColumns = `id, date, mood, energy, sleep, stress, note, created_at`

	// SQLSTATE for unique_violation
	uniqueViolation = "23505"
)

func (s *Store) Append(entry models.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		entry.ID, entry.Date, entry.Mood, entry.Energy, entry.Sleep, entry.Stress,
		entry.Note, entry.CreatedAt.UTC(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == "entries_date_key" {
			return fmt.Errorf("%w: %s", storage.ErrEntryExists, entry.Date)
		}
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (s *Store) GetEntryByDate(date string) (models.Entry, error) {
	var entry models.Entry
	err := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE date = $1`, date).Scan(
		&entry.ID, &entry.Date, &entry.Mood, &entry.Energy, &entry.Sleep, &entry.Stress,
		&entry.Note, &entry.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, fmt.Errorf("%w: %s", storage.ErrNotFound, date)
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

func (s *Store) LoadAll() ([]models.Entry, error) {
	rows, err := s.db.Query(`SELECT ` + entryColumns + ` FROM entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(
			&entry.ID, &entry.Date, &entry.Mood, &entry.Energy, &entry.Sleep, &entry.Stress,
			&entry.Note, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
