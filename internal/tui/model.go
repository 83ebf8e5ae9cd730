package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellday/internal/analytics"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/recommend"
	"github.com/julianstephens/wellday/internal/reminder"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/tui/components/resources"
	"github.com/julianstephens/wellday/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHistory
	StateSupport
	StateLogForm
)

var tabTitles = []string{"Today", "History", "Support"}

// tickInterval matches the reminder daemon's minute granularity.
const tickInterval = time.Minute

type Model struct {
	store     storage.Provider
	selector  *recommend.Selector
	scheduler *reminder.Scheduler
	clock     reminder.Clock

	state    SessionState
	keys     KeyMap
	help     help.Model
	history  viewport.Model
	support  resources.Model
	form     *huh.Form
	snapshot *models.Snapshot
	note     *string

	report    analytics.Report
	suggested *models.SupportResource
	banner    string
	status    string
	err       error
	quitting  bool
	width     int
	height    int
}

// NewModel builds the dashboard. scheduler may be nil, in which case no
// reminders are checked while the TUI runs.
func NewModel(store storage.Provider, selector *recommend.Selector, scheduler *reminder.Scheduler, clock reminder.Clock) Model {
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	m := Model{
		store:     store,
		selector:  selector,
		scheduler: scheduler,
		clock:     clock,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		history:   viewport.New(0, 0),
		support:   resources.New(selector.Catalog(), 0, 0),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		if !m.report.TodayLogged {
			keys = append(keys, m.keys.Log)
		}
	case StateSupport:
		if m.support.Open() {
			keys = append(keys, m.keys.Back)
		} else {
			keys = append(keys, m.keys.Enter)
		}
	case StateLogForm:
		return []key.Binding{m.keys.Back}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back}
	actions := []key.Binding{m.keys.Log}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// now is the current time in the configured timezone.
func (m Model) now() (time.Time, error) {
	settings, err := m.store.GetSettings()
	if err != nil {
		return time.Time{}, err
	}
	return utils.InTimezone(m.clock.Now(), settings.Timezone)
}

// refresh rebuilds the report and the history pane from storage.
func (m *Model) refresh() {
	entries, err := m.store.LoadAll()
	if err != nil {
		m.err = err
		return
	}
	now, err := m.now()
	if err != nil {
		m.err = err
		return
	}
	report, err := analytics.Build(entries, now)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.report = report
	m.suggested = nil
	if report.Latest != nil {
		if r, err := m.selector.Select(report.Latest.Snapshot()); err == nil {
			m.suggested = &r
		}
	}
	m.history.SetContent(m.historyContent(entries, now))
}

func (m *Model) resize() {
	// tabs, help and padding
	h := m.height - 6
	if h < 0 {
		h = 0
	}
	w := m.width - 4
	if w < 0 {
		w = 0
	}
	m.history.Width = w
	m.history.Height = h
	m.support.SetSize(w, h)
	m.help.Width = m.width
}
