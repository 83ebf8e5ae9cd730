package resources

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/recommend"
	"github.com/julianstephens/wellday/internal/render"
)

type Item struct {
	Resource models.SupportResource
}

func (i Item) Title() string {
	if i.Resource.Urgency == models.UrgencyHigh {
		return "! " + i.Resource.Title
	}
	return i.Resource.Title
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %d activities", i.Resource.Description, len(i.Resource.Activities))
}

func (i Item) FilterValue() string { return i.Resource.Title }

type KeyMap struct {
	Open key.Binding
	Back key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
	}
}

// Model lists the support catalog and shows one resource in detail.
type Model struct {
	list   list.Model
	detail viewport.Model
	keys   KeyMap
	open   bool
}

func New(catalog []models.SupportResource, width, height int) Model {
	items := make([]list.Item, len(catalog))
	for i, r := range catalog {
		items[i] = Item{Resource: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Support"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	return Model{
		list:   l,
		detail: viewport.New(width, height),
		keys:   keys,
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
	m.detail.Width = width
	m.detail.Height = height
}

// Open reports whether a resource detail is showing.
func (m Model) Open() bool { return m.open }

// Show opens the detail view for r.
func (m *Model) Show(r models.SupportResource) {
	m.open = true
	content := render.Resource(r)
	for _, a := range r.Activities {
		content += "\n\n" + render.Activity(a)
	}
	if r.Urgency == models.UrgencyHigh {
		content += "\n\n" + render.EmergencyContacts(recommend.EmergencyContacts())
	}
	m.detail.SetContent(content)
	m.detail.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case m.open && key.Matches(msg, m.keys.Back):
			m.open = false
			return m, nil
		case !m.open && m.list.FilterState() != list.Filtering && key.Matches(msg, m.keys.Open):
			if item, ok := m.list.SelectedItem().(Item); ok {
				m.Show(item.Resource)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.open {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.open {
		return m.detail.View()
	}
	return m.list.View()
}

// Filtering reports whether the list filter input has focus.
func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }
