// Package notifier delivers reminder notifications and tracks whether the
// user has allowed them.
package notifier

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
)

// Channel is a delivery mechanism
type Channel interface {
	Name() string
	// Available reports why the channel cannot deliver right now, or nil.
	Available() error
	Send(title, body string) error
}

// PermissionSource exposes the stored permission decision.
type PermissionSource interface {
	GetSettings() (models.Settings, error)
}

// Notifier gates a channel behind the stored permission.
type Notifier struct {
	channel Channel
	source  PermissionSource
}

func New(channel Channel, source PermissionSource) *Notifier {
	return &Notifier{channel: channel, source: source}
}

func (n *Notifier) Channel() Channel { return n.channel }

// PermissionState combines the stored decision with channel availability.
// A granted permission whose channel is unreachable reads as undetermined.
func (n *Notifier) PermissionState() models.PermissionState {
	settings, err := n.source.GetSettings()
	if err != nil {
		logger.Warn("Failed to read notification permission", "error", err)
		return models.PermissionUndetermined
	}

	state := settings.NotificationPermission
	if state != models.PermissionGranted {
		return state
	}
	if err := n.channel.Available(); err != nil {
		logger.Debug("Notification channel unavailable", "channel", n.channel.Name(), "error", err)
		return models.PermissionUndetermined
	}
	return models.PermissionGranted
}

// RequestPermission asks the channel whether it can deliver and returns the
// resulting state for the caller to persist.
func (n *Notifier) RequestPermission() (models.PermissionState, error) {
	if err := n.channel.Available(); err != nil {
		return models.PermissionDenied, err
	}
	return models.PermissionGranted, nil
}

func (n *Notifier) Deliver(title, body string) error {
	return n.channel.Send(title, body)
}

var (
	consoleTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	consoleBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)
)

// Console writes notifications to a terminal. It is always available.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Name() string     { return "console" }
func (c *Console) Available() error { return nil }

func (c *Console) Send(title, body string) error {
	box := consoleBoxStyle.Render(consoleTitleStyle.Render(title) + "\n" + body)
	_, err := fmt.Fprintf(c.w, "\a%s\n", box)
	return err
}
