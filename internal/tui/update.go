package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/reminder"
	"github.com/julianstephens/wellday/internal/storage"
)

type tickMsg time.Time

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tickMsg:
		m.checkReminder()
		m.refresh()
		return m, tick()
	}

	if m.state == StateLogForm {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// let the support list own its keys while filtering
		if m.state == StateSupport && m.support.Filtering() {
			var cmd tea.Cmd
			m.support, cmd = m.support.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + SessionState(len(tabTitles)) - 1) % SessionState(len(tabTitles))
			return m, nil
		case m.state == StateToday && key.Matches(msg, m.keys.Log):
			cmd := m.startCheckIn()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHistory:
		m.history, cmd = m.history.Update(msg)
	case StateSupport:
		m.support, cmd = m.support.Update(msg)
	}
	return m, cmd
}

// startCheckIn opens the check-in form unless today is already logged.
func (m *Model) startCheckIn() tea.Cmd {
	if m.report.TodayLogged {
		m.status = "Today's check-in is already saved."
		return nil
	}
	m.snapshot = &models.Snapshot{}
	m.note = new(string)
	m.form = NewCheckInForm(m.snapshot, m.note)
	m.state = StateLogForm
	m.status = ""
	return m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateToday
		m.status = "Check-in cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveEntry(); err != nil {
			m.status = "Could not save check-in: " + err.Error()
		}
		m.state = StateToday
	case huh.StateAborted:
		m.state = StateToday
		m.status = "Check-in cancelled."
	}
	return m, cmd
}

// saveEntry appends today's entry from the form values and selects a
// recommendation for it.
func (m *Model) saveEntry() error {
	now, err := m.now()
	if err != nil {
		return err
	}
	date := now.Format(constants.DateFormat)
	if err := m.snapshot.Validate(); err != nil {
		return err
	}
	entry := models.NewEntry(uuid.NewString(), date, *m.snapshot, strings.TrimSpace(*m.note), m.clock.Now())
	if err := m.store.Append(entry); err != nil {
		if errors.Is(err, storage.ErrEntryExists) {
			return fmt.Errorf("%s: %w", date, err)
		}
		return err
	}
	logger.Debug("Check-in saved from TUI", "date", date)

	m.refresh()
	m.status = "✓ Check-in saved for " + date
	m.banner = ""
	return nil
}

// checkReminder runs one reminder tick and raises a banner when it fires.
func (m *Model) checkReminder() {
	if m.scheduler == nil {
		return
	}
	res, err := m.scheduler.Check()
	if err != nil {
		logger.Warn("Reminder check failed", "error", err)
	}
	if res.State == reminder.Fired {
		m.banner = constants.ReminderBody
	}
}
