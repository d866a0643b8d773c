package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/ecochallenge/internal/logger"
)

// Scheduler runs a job on a standard five-field cron spec.
type Scheduler struct {
	spec     string
	schedule cron.Schedule
	loc      *time.Location
}

// NewScheduler validates spec. A nil location means time.Local.
func NewScheduler(spec string, loc *time.Location) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{spec: spec, schedule: schedule, loc: loc}, nil
}

// Next returns the first activation after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.loc))
}

// Run invokes job on every activation until ctx is cancelled. Jobs never
// overlap; an activation that fires while the previous job runs is skipped.
func (s *Scheduler) Run(ctx context.Context, job func(context.Context)) error {
	c := cron.New(
		cron.WithLocation(s.loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(s.spec, func() { job(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	logger.Info("Reminder scheduler started", "schedule", s.spec, "next", s.Next(time.Now()))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("Reminder scheduler stopped")
	return nil
}
