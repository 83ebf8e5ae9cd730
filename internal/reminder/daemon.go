package reminder

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron/v2"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/logger"
)

// Run ticks the scheduler at the top of every minute until ctx is cancelled.
// onTick, when non-nil, observes every result.
func Run(ctx context.Context, s *Scheduler, onTick func(Result, error)) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create reminder scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.CronJob(constants.ReminderCheckSpec, false),
		gocron.NewTask(func() {
			res, err := s.Check()
			if err != nil {
				logger.Error("Reminder check failed", "error", err)
			} else {
				logger.Debug("Reminder check", "state", res.State, "reason", res.Reason)
			}
			if onTick != nil {
				onTick(res, err)
			}
		}),
		gocron.WithName("reminder-check"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register reminder check: %w", err)
	}

	sched.Start()
	<-ctx.Done()
	return sched.Shutdown()
}
