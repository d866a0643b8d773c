package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/ecochallenge/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingDefaultPeriod:
			p, err := ParsePeriod(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing default_period: %w", err)
			}
			settings.DefaultPeriod = p
		case constants.SettingReminderLeadDays:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing reminder_lead_days: %w", err)
			}
			settings.ReminderLeadDays = n
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingReminderSchedule:
			settings.ReminderSchedule = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:             settings.Timezone,
		constants.SettingDefaultPeriod:        string(settings.DefaultPeriod),
		constants.SettingReminderLeadDays:     strconv.Itoa(settings.ReminderLeadDays),
		constants.SettingNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		constants.SettingReminderSchedule:     settings.ReminderSchedule,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.DefaultPeriod == "" {
		settings.DefaultPeriod = Period(constants.DefaultPeriod)
	}
	if settings.ReminderLeadDays == 0 {
		settings.ReminderLeadDays = constants.DefaultReminderLeadDays
	}
	if settings.ReminderSchedule == "" {
		settings.ReminderSchedule = constants.DefaultReminderSchedule
	}
}

// DefaultSettings returns a fully populated Settings value.
func DefaultSettings() Settings {
	s := Settings{NotificationsEnabled: constants.DefaultNotificationsEnabled}
	ApplyDefaultSettings(&s)
	return s
}
