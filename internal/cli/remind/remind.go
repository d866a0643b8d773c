package remind

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/logger"
	"github.com/julianstephens/ecochallenge/internal/reminder"
)

type RemindCmd struct {
	DryRun   bool   `help:"List due goals without sending notifications."`
	Watch    bool   `help:"Keep running and check on the reminder schedule."`
	Schedule string `help:"Cron schedule for --watch (defaults to the stored setting)."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	if !c.Watch {
		_, err := c.check(context.Background(), ctx)
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	spec := strings.TrimSpace(c.Schedule)
	if spec == "" {
		spec = settings.ReminderSchedule
	}
	sched, err := reminder.NewScheduler(spec, ctx.Location())
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching goals on schedule %q (next check %s). Press Ctrl+C to stop.\n",
		spec, sched.Next(ctx.Now()).Format("2006-01-02 15:04"))
	return sched.Run(sigCtx, func(runCtx context.Context) {
		if _, err := c.check(runCtx, ctx); err != nil {
			logger.Error("Reminder check failed", "error", err)
		}
	})
}

// check finds due goals and sends them unless this is a dry run or
// notifications are disabled. It returns the number of notifications sent.
func (c *RemindCmd) check(runCtx context.Context, ctx *cli.Context) (int, error) {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("failed to get settings: %w", err)
	}
	all, err := ctx.Store.LoadGoals()
	if err != nil {
		return 0, fmt.Errorf("failed to load goals: %w", err)
	}
	current, _, err := ctx.CurrentBreakdown()
	if err != nil {
		return 0, err
	}

	due := reminder.Due(all, current, ctx.Now(), settings.ReminderLeadDays)
	if len(due) == 0 {
		fmt.Println("No goals due.")
		return 0, nil
	}
	for _, r := range due {
		mark := cli.WarningStyle.Render("⚠")
		if r.Overdue() {
			mark = cli.DangerStyle.Render("❌")
		}
		fmt.Printf("%s %s: %s\n", mark, r.Title(), r.Message())
	}

	switch {
	case c.DryRun:
		fmt.Println(cli.MutedStyle.Render("Dry run, no notifications sent."))
		return 0, nil
	case !settings.NotificationsEnabled:
		fmt.Println(cli.MutedStyle.Render("Notifications are disabled (settings --notifications-enabled)."))
		return 0, nil
	case ctx.Notifier == nil:
		return 0, fmt.Errorf("no notifier configured")
	}

	sent, err := reminder.Dispatch(runCtx, due, ctx.Notifier)
	if err != nil {
		return sent, err
	}
	fmt.Printf("✓ Sent %d reminder(s)\n", sent)
	return sent, nil
}
