// Package reminder finds goals whose target date is close and delivers
// reminders on a cron schedule.
package reminder

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/ecochallenge/internal/goals"
	"github.com/julianstephens/ecochallenge/internal/models"
)

// Reminder is an active goal that is due soon or overdue.
type Reminder struct {
	Goal     models.PersonalGoal
	DaysLeft int
	Progress float64
}

func (r Reminder) Overdue() bool {
	return r.DaysLeft < 0
}

func (r Reminder) Title() string {
	if r.Overdue() {
		return "Goal overdue"
	}
	return "Goal due soon"
}

func (r Reminder) Message() string {
	switch {
	case r.Overdue():
		return fmt.Sprintf("%q passed its target date %d day(s) ago (%.0f%% achieved)", r.Goal.Title, -r.DaysLeft, r.Progress)
	case r.DaysLeft == 0:
		return fmt.Sprintf("%q is due today (%.0f%% achieved)", r.Goal.Title, r.Progress)
	default:
		return fmt.Sprintf("%q is due in %d day(s) (%.0f%% achieved)", r.Goal.Title, r.DaysLeft, r.Progress)
	}
}

// Due lists active goals whose target date is at most leadDays away,
// overdue goals included, soonest first. Goals with malformed data are
// skipped.
func Due(all []models.PersonalGoal, current models.FootprintBreakdown, now time.Time, leadDays int) []Reminder {
	active, _ := goals.SplitByStatus(all)

	var due []Reminder
	for _, g := range active {
		days, err := goals.DaysRemaining(g, now)
		if err != nil || days > leadDays {
			continue
		}
		progress, err := goals.Progress(g, current)
		if err != nil {
			continue
		}
		due = append(due, Reminder{Goal: g, DaysLeft: days, Progress: progress})
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DaysLeft < due[j].DaysLeft
	})
	return due
}

// Sender delivers a single notification.
type Sender interface {
	Notify(ctx context.Context, title, text string) error
}

// Dispatch sends every reminder and returns how many were delivered. It
// stops at the first failure.
func Dispatch(ctx context.Context, reminders []Reminder, s Sender) (int, error) {
	for i, r := range reminders {
		if err := s.Notify(ctx, r.Title(), r.Message()); err != nil {
			return i, fmt.Errorf("sending reminder for %q: %w", r.Goal.Title, err)
		}
	}
	return len(reminders), nil
}
