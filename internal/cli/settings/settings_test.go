package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return &cli.Context{Store: store}
}

func ptr[T any](v T) *T { return &v }

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx := setupTestDB(t)

	cmd := &SettingsCmd{
		Timezone:             ptr("Europe/Rome"),
		DefaultPeriod:        ptr("1y"),
		ReminderLeadDays:     ptr(3),
		NotificationsEnabled: ptr(false),
		ReminderSchedule:     ptr("30 8 * * 1"),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	want := models.Settings{
		Timezone:             "Europe/Rome",
		DefaultPeriod:        models.Period1Year,
		ReminderLeadDays:     3,
		NotificationsEnabled: false,
		ReminderSchedule:     "30 8 * * 1",
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestSettingsCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"timezone", SettingsCmd{Timezone: ptr("Mars/Olympus")}},
		{"period", SettingsCmd{DefaultPeriod: ptr("2w")}},
		{"lead days", SettingsCmd{ReminderLeadDays: ptr(0)}},
		{"schedule", SettingsCmd{ReminderSchedule: ptr("every morning")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestDB(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected validation error")
			}
			got, _ := ctx.Store.GetSettings()
			if got != models.DefaultSettings() {
				t.Errorf("settings changed after invalid update: %+v", got)
			}
		})
	}
}
