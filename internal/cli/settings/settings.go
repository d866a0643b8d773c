package settings

import (
	"fmt"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/reminder"
	"github.com/julianstephens/ecochallenge/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone name, or Local for the system timezone."`
	DefaultPeriod        *string `help:"Default history window (3m, 6m, 1y, all)."`
	ReminderLeadDays     *int    `help:"Days before a goal's target date to start reminding."`
	NotificationsEnabled *bool   `help:"Enable or disable reminder notifications."`
	ReminderSchedule     *string `help:"Cron schedule used by 'remind --watch'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Default Period:        %s (%s)\n", settings.DefaultPeriod, settings.DefaultPeriod.Label())
		fmt.Println("\nReminder Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Lead Days:             %d\n", settings.ReminderLeadDays)
		fmt.Printf("  Schedule:              %s\n", settings.ReminderSchedule)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.DefaultPeriod != nil {
		p, err := models.ParsePeriod(*c.DefaultPeriod)
		if err != nil {
			return err
		}
		settings.DefaultPeriod = p
		updated = true
	}
	if c.ReminderLeadDays != nil {
		if *c.ReminderLeadDays < 1 {
			return fmt.Errorf("reminder lead days must be at least 1, got %d", *c.ReminderLeadDays)
		}
		settings.ReminderLeadDays = *c.ReminderLeadDays
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.ReminderSchedule != nil {
		if _, err := reminder.NewScheduler(*c.ReminderSchedule, nil); err != nil {
			return err
		}
		settings.ReminderSchedule = *c.ReminderSchedule
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
