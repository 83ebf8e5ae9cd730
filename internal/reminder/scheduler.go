package reminder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/utils"
)

// State is the outcome of one scheduler tick
type State string

const (
	Idle  State = "idle"
	Fired State = "fired"
)

// Result describes what a tick decided
type Result struct {
	State  State
	Reason Reason
	Date   string // the user's current date, YYYY-MM-DD
}

// Store is the persistence the scheduler needs. ClaimReminderDate must set
// the last-notified date to date only if it differs, reporting whether it changed.
type Store interface {
	GetSettings() (models.Settings, error)
	GetEntryByDate(date string) (models.Entry, error)
	ClaimReminderDate(date string) (bool, error)
}

// Sink delivers notifications
type Sink interface {
	PermissionState() models.PermissionState
	Deliver(title, body string) error
}

// Scheduler runs the reminder state machine against a store and sink.
// Check is safe to call from concurrent ticks; the read-compare-write of the
// last-notified date happens under a lock and through the store's claim.
type Scheduler struct {
	mu     sync.Mutex
	store  Store
	sink   Sink
	clock  Clock
	warned bool
}

func New(store Store, sink Sink, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{store: store, sink: sink, clock: clock}
}

// Check evaluates one tick. The last-notified date is persisted before
// delivery, so a failed delivery still consumes the day and the reminder
// fires at most once per date. In that case the result is Fired and the
// delivery error is returned.
func (s *Scheduler) Check() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.store.GetSettings()
	if err != nil {
		return Result{State: Idle}, fmt.Errorf("failed to load settings: %w", err)
	}
	now, err := utils.InTimezone(s.clock.Now(), settings.Timezone)
	if err != nil {
		return Result{State: Idle}, err
	}
	today := now.Format(constants.DateFormat)
	idle := func(r Reason) (Result, error) {
		return Result{State: Idle, Reason: r, Date: today}, nil
	}

	if !settings.Reminder.Enabled {
		return idle(ReasonDisabled)
	}

	if s.sink.PermissionState() != models.PermissionGranted {
		if !s.warned {
			logger.Warn("Reminder notifications are not permitted; reminders stay idle", "permission", s.sink.PermissionState())
			s.warned = true
		}
		return idle(ReasonPermission)
	}
	s.warned = false

	hasEntry := true
	if _, err := s.store.GetEntryByDate(today); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return Result{State: Idle, Date: today}, fmt.Errorf("failed to look up today's entry: %w", err)
		}
		hasEntry = false
	}

	if fire, reason := Decide(now, settings.Reminder, hasEntry); !fire {
		return idle(reason)
	}

	claimed, err := s.store.ClaimReminderDate(today)
	if err != nil {
		return Result{State: Idle, Date: today}, fmt.Errorf("failed to record reminder: %w", err)
	}
	if !claimed {
		return idle(ReasonAlreadyNotified)
	}

	res := Result{State: Fired, Reason: ReasonDue, Date: today}
	if err := s.sink.Deliver(constants.ReminderTitle, constants.ReminderBody); err != nil {
		logger.Error("Reminder delivery failed", "date", today, "error", err)
		return res, fmt.Errorf("failed to deliver reminder: %w", err)
	}
	logger.Info("Reminder delivered", "date", today)
	return res, nil
}
