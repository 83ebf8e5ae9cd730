// Package diskv stores entries and settings as JSON files in a directory tree.
package diskv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
)

const (
	entriesCollection = "entries"
	claimsDir         = "claims"
	appendsDir        = "appends"
	settingsKey       = "settings/settings"
)

type Store struct {
	basePath string
	d        *diskv.Diskv
	mu       sync.Mutex
}

// NewStore returns a store rooted at path. A diskv:// prefix is accepted.
func NewStore(path string) *Store {
	return &Store{basePath: strings.TrimPrefix(path, constants.DiskvPrefix)}
}

// record is the on-disk form of an entry. Seq preserves insertion order.
type record struct {
	Seq int64 `json:"seq"`
	models.Entry
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName), "/")
}

func entryKey(date string) string {
	return entriesCollection + "/" + date
}

func (s *Store) open() {
	if s.d != nil {
		return
	}
	s.d = diskv.New(diskv.Options{
		BasePath:          s.basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      0, // the daemon and CLI write the same files
		FilePerm:          0600,
		PathPerm:          0700,
		TempDir:           filepath.Join(s.basePath, ".tmp"), // atomic renames
	})
}

func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Join(s.basePath, claimsDir), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	s.open()

	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

func (s *Store) Load() error {
	if s.d != nil {
		return nil
	}
	if _, err := os.Stat(filepath.Join(s.basePath, "settings")); os.IsNotExist(err) {
		return storage.ErrNotInitialized
	}
	s.open()
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.basePath
}

func (s *Store) readRecord(key string) (record, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return record{}, err
	}
	var r record
	if err := json.Unmarshal(val, &r); err != nil {
		return record{}, fmt.Errorf("%s: %w", key, err)
	}
	return r, nil
}

func (s *Store) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.d.Write(key, data)
}

func (s *Store) records() ([]record, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var all []record
	for key := range s.d.KeysPrefix(entriesCollection+"/", ctx.Done()) {
		r, err := s.readRecord(key)
		if err != nil {
			return nil, err
		}
		all = append(all, r)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Seq == all[j].Seq {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].Seq < all[j].Seq
	})
	return all, nil
}

// reserveDate creates the O_EXCL marker that makes one writer per date win,
// including writers in other processes.
func (s *Store) reserveDate(date string) (string, error) {
	dir := filepath.Join(s.basePath, appendsDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create append markers: %w", err)
	}
	marker := filepath.Join(dir, date)
	f, err := os.OpenFile(marker, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", storage.ErrEntryExists, date)
		}
		return "", fmt.Errorf("failed to reserve entry date: %w", err)
	}
	f.Close()
	return marker, nil
}

func (s *Store) Append(entry models.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := entryKey(entry.Date)
	if s.d.Has(key) {
		return fmt.Errorf("%w: %s", storage.ErrEntryExists, entry.Date)
	}
	marker, err := s.reserveDate(entry.Date)
	if err != nil {
		return err
	}

	all, err := s.records()
	if err == nil {
		var seq int64 = 1
		if n := len(all); n > 0 {
			seq = all[n-1].Seq + 1
		}
		err = s.writeJSON(key, record{Seq: seq, Entry: entry})
	}
	if err != nil {
		_ = os.Remove(marker)
		return err
	}
	return nil
}

func (s *Store) GetEntryByDate(date string) (models.Entry, error) {
	key := entryKey(date)
	if !s.d.Has(key) {
		return models.Entry{}, fmt.Errorf("%w: %s", storage.ErrNotFound, date)
	}
	r, err := s.readRecord(key)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to get entry: %w", err)
	}
	return r.Entry, nil
}

func (s *Store) LoadAll() ([]models.Entry, error) {
	all, err := s.records()
	if err != nil {
		return nil, err
	}
	entries := make([]models.Entry, len(all))
	for i, r := range all {
		entries[i] = r.Entry
	}
	return entries, nil
}

func (s *Store) GetSettings() (models.Settings, error) {
	if !s.d.Has(settingsKey) {
		return models.Settings{}, fmt.Errorf("settings not found")
	}
	val, err := s.d.Read(settingsKey)
	if err != nil {
		return models.Settings{}, err
	}
	var data map[string]string
	if err := json.Unmarshal(val, &data); err != nil {
		return models.Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	settings, err := models.MapToSettings(data)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(settingsKey, models.SettingsToMap(settings))
}

// ClaimReminderDate records date as notified. A marker file created with
// O_EXCL makes the claim exclusive across processes sharing the directory.
func (s *Store) ClaimReminderDate(date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.GetSettings()
	if err != nil {
		return false, err
	}
	if settings.Reminder.LastNotifiedDate == date {
		return false, nil
	}

	marker := filepath.Join(s.basePath, claimsDir, date)
	f, err := os.OpenFile(marker, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to claim reminder date: %w", err)
	}
	f.Close()

	settings.Reminder.LastNotifiedDate = date
	if err := s.writeJSON(settingsKey, models.SettingsToMap(settings)); err != nil {
		return false, fmt.Errorf("failed to record reminder date: %w", err)
	}
	return true, nil
}
