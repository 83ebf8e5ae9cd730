package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/notifier"
	"github.com/julianstephens/wellday/internal/recommend"
	"github.com/julianstephens/wellday/internal/reminder"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
)

func setupModel(t *testing.T, now time.Time, permission models.PermissionState) (Model, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.Timezone = "UTC"
	settings.NotificationPermission = permission
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	var out bytes.Buffer
	clock := reminder.NewFixedClock(now)
	sched := reminder.New(store, notifier.New(notifier.NewConsole(&out), store), clock)
	return NewModel(store, recommend.DefaultSelector(), sched, clock), store, &out
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabCycling(t *testing.T) {
	m, _, _ := setupModel(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), models.PermissionUndetermined)

	want := []SessionState{StateHistory, StateSupport, StateToday}
	for _, w := range want {
		m = press(m, tea.KeyMsg{Type: tea.KeyTab})
		if m.state != w {
			t.Fatalf("state = %d, want %d", m.state, w)
		}
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != StateSupport {
		t.Errorf("shift+tab from Today = %d, want Support", m.state)
	}
}

func TestLogKeyOpensForm(t *testing.T) {
	m, _, _ := setupModel(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), models.PermissionUndetermined)

	m = press(m, runes("l"))
	if m.state != StateLogForm || m.form == nil {
		t.Fatalf("state = %d, want log form", m.state)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateToday {
		t.Errorf("esc did not close the form, state = %d", m.state)
	}
	if !strings.Contains(m.status, "cancelled") {
		t.Errorf("status = %q", m.status)
	}
}

func TestLogKeyOutsideTodayIgnored(t *testing.T) {
	m, _, _ := setupModel(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), models.PermissionUndetermined)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(m, runes("l"))
	if m.state != StateHistory {
		t.Errorf("state = %d, want History", m.state)
	}
}

func TestSaveEntry(t *testing.T) {
	m, store, _ := setupModel(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), models.PermissionUndetermined)

	m = press(m, runes("l"))
	*m.snapshot = models.Snapshot{Mood: 2, Energy: 3, Sleep: 3, Stress: 2}
	*m.note = "  rough morning "
	if err := m.saveEntry(); err != nil {
		t.Fatalf("saveEntry failed: %v", err)
	}

	entry, err := store.GetEntryByDate("2024-03-15")
	if err != nil {
		t.Fatalf("entry not saved: %v", err)
	}
	if entry.Note != "rough morning" {
		t.Errorf("note = %q", entry.Note)
	}
	if !m.report.TodayLogged || m.report.Streak != 1 {
		t.Errorf("report not refreshed: %+v", m.report)
	}
	if m.suggested == nil || m.suggested.Title != "Mood Boost" {
		t.Errorf("suggested = %+v, want Mood Boost", m.suggested)
	}

	// a second check-in for the same day is refused
	m = press(m, runes("l"))
	if m.state != StateToday {
		t.Errorf("form opened although today is logged")
	}
}

func TestSaveEntryRejectsIncompleteSnapshot(t *testing.T) {
	m, store, _ := setupModel(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), models.PermissionUndetermined)

	m = press(m, runes("l"))
	*m.snapshot = models.Snapshot{Mood: 2}
	if err := m.saveEntry(); err == nil {
		t.Fatal("expected validation error")
	}
	if all, _ := store.LoadAll(); len(all) != 0 {
		t.Errorf("incomplete entry saved: %+v", all)
	}
}

func TestTickFiresReminder(t *testing.T) {
	tests := []struct {
		name       string
		permission models.PermissionState
		wantFired  bool
	}{
		{"granted", models.PermissionGranted, true},
		{"undetermined", models.PermissionUndetermined, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, out := setupModel(t, time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC), tt.permission)

			next, cmd := m.Update(tickMsg(time.Now()))
			m = next.(Model)
			if cmd == nil {
				t.Error("tick did not schedule the next tick")
			}

			if got := m.banner != ""; got != tt.wantFired {
				t.Errorf("banner shown = %v, want %v", got, tt.wantFired)
			}
			if got := out.Len() > 0; got != tt.wantFired {
				t.Errorf("notification delivered = %v, want %v", got, tt.wantFired)
			}

			settings, _ := store.GetSettings()
			if tt.wantFired && settings.Reminder.LastNotifiedDate != "2024-03-15" {
				t.Errorf("last notified = %q", settings.Reminder.LastNotifiedDate)
			}

			// a second tick the same day stays quiet
			out.Reset()
			next, _ = m.Update(tickMsg(time.Now()))
			m = next.(Model)
			if out.Len() != 0 {
				t.Error("reminder fired twice on one day")
			}
		})
	}
}

func TestViewRendersTabs(t *testing.T) {
	m, _, _ := setupModel(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), models.PermissionUndetermined)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"Today", "History", "Support", "No check-in yet today"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
