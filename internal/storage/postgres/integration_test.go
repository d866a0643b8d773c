package postgres

import (
	"os"
	"testing"
	"time"

	"github.com/julianstephens/ecochallenge/internal/models"
)

// TestStore_Integration runs against a real database.
// Example: POSTGRES_TEST_URL="postgres://eco_user@localhost:5432/eco_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	t.Run("Settings", func(t *testing.T) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		settings.ReminderLeadDays = 2
		if err := store.SaveSettings(settings); err != nil {
			t.Fatalf("Failed to save settings: %v", err)
		}
		updated, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get updated settings: %v", err)
		}
		if updated.ReminderLeadDays != 2 {
			t.Errorf("ReminderLeadDays = %d, want 2", updated.ReminderLeadDays)
		}
	})

	t.Run("History", func(t *testing.T) {
		history := []models.HistoricalEntry{
			{ID: "h2", Date: "2024-02-01", Data: models.FootprintBreakdown{Total: 900}},
			{ID: "h1", Date: "2024-01-01", Data: models.FootprintBreakdown{Total: 1000}},
		}
		if err := store.SaveHistory(history); err != nil {
			t.Fatalf("SaveHistory failed: %v", err)
		}
		got, err := store.LoadHistory()
		if err != nil {
			t.Fatalf("LoadHistory failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "h2" || got[1].ID != "h1" {
			t.Errorf("LoadHistory() = %+v", got)
		}
	})

	t.Run("Goals", func(t *testing.T) {
		goals := []models.PersonalGoal{{
			ID: "g1", Title: "Train not plane", Category: models.CategoryTransport,
			TargetReduction: 500, TargetDate: "2025-01-01", Completed: true,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}}
		if err := store.SaveGoals(goals); err != nil {
			t.Fatalf("SaveGoals failed: %v", err)
		}
		got, err := store.LoadGoals()
		if err != nil {
			t.Fatalf("LoadGoals failed: %v", err)
		}
		if len(got) != 1 || !got[0].Completed || got[0].Category != models.CategoryTransport {
			t.Errorf("LoadGoals() = %+v", got)
		}
	})

	t.Run("CurrentFootprint", func(t *testing.T) {
		fp := models.CurrentFootprint{
			Answers:   models.QuestionnaireAnswers{VehicleType: models.VehicleHybrid, HeatingType: models.HeatingWood},
			Breakdown: models.FootprintBreakdown{Food: 1500, Total: 1500},
			UpdatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		for range 2 {
			if err := store.SaveCurrentFootprint(fp); err != nil {
				t.Fatalf("SaveCurrentFootprint failed: %v", err)
			}
		}
		got, err := store.GetCurrentFootprint()
		if err != nil {
			t.Fatalf("GetCurrentFootprint failed: %v", err)
		}
		if got.Breakdown != fp.Breakdown || got.Answers != fp.Answers {
			t.Errorf("GetCurrentFootprint() = %+v", got)
		}
	})

	t.Run("Profile", func(t *testing.T) {
		if err := store.SaveProfile(models.CommunityUser{ID: "p", Username: "tester", Level: "Beginner", JoinedAt: "2024-01-01"}); err != nil {
			t.Fatalf("SaveProfile failed: %v", err)
		}
		if _, err := store.GetProfile(); err != nil {
			t.Errorf("GetProfile() error = %v", err)
		}
	})
}
