package constants

const (
	SettingTimezone             = "timezone"
	SettingDefaultPeriod        = "default_period"
	SettingReminderLeadDays     = "reminder_lead_days"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingReminderSchedule     = "reminder_schedule"

	// Default Settings Values
	DefaultTimezone             = "Local" // Use system local timezone by default
	DefaultPeriod               = "6m"
	DefaultReminderLeadDays     = 7
	DefaultNotificationsEnabled = true
	DefaultReminderSchedule     = "0 9 * * *" // every day at 09:00
)
