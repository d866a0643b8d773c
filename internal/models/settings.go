package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`              // IANA timezone name or "Local" for the system timezone
	DefaultPeriod        Period `json:"default_period"`        // history window used when no --period is given
	ReminderLeadDays     int    `json:"reminder_lead_days"`    // days before a goal's target date to start reminding
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether reminders are sent to the tray app
	ReminderSchedule     string `json:"reminder_schedule"`     // cron spec used by remind --watch
}
