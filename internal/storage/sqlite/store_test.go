package sqlite

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestLoad_NotInitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("expected not initialized error, got %v", err)
	}
}

func TestInit_DefaultSettings(t *testing.T) {
	store, dbPath := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}

	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if current != latest || current == 0 {
		t.Errorf("schema version = %d/%d, want fully migrated", current, latest)
	}

	// Re-running Init over an existing database keeps the data
	store.Close()
	again := NewStore(dbPath)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer again.Close()
	if _, err := again.GetSettings(); err != nil {
		t.Errorf("GetSettings after re-init failed: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)

	want := models.Settings{
		Timezone:             "Europe/Paris",
		DefaultPeriod:        models.Period1Year,
		ReminderLeadDays:     3,
		NotificationsEnabled: false,
		ReminderSchedule:     "30 8 * * 1",
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestHistoryPreservesOrder(t *testing.T) {
	store, dbPath := setupTestStore(t)

	history := []models.HistoricalEntry{
		{ID: "c", Date: "2024-03-01", Data: models.FootprintBreakdown{Transport: 100, Energy: 200, Food: 300, Consumption: 40, Total: 640}, Notes: "newest"},
		{ID: "a", Date: "2024-02-01", Data: models.FootprintBreakdown{Total: 900}},
		{ID: "b", Date: "2024-01-01", Data: models.FootprintBreakdown{Total: 1000}},
	}
	if err := store.SaveHistory(history); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	// A fresh connection sees the same sequence
	store.Close()
	reopened := NewStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if !reflect.DeepEqual(got, history) {
		t.Errorf("LoadHistory() = %+v, want %+v", got, history)
	}

	// Saving a shorter collection replaces the old one
	if err := reopened.SaveHistory(history[:1]); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}
	got, _ = reopened.LoadHistory()
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("after replace got %+v", got)
	}
}

func TestGoalsRoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)

	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	goals := []models.PersonalGoal{
		{ID: "g2", Title: "Bike to work", Category: models.CategoryTransport, TargetReduction: 400, TargetDate: "2024-12-31", CreatedAt: created},
		{ID: "g1", Title: "Cut heating", Description: "19 degrees max", Category: models.CategoryEnergy, TargetReduction: 150.5, TargetDate: "2024-10-01", Completed: true, CreatedAt: created.Add(-time.Hour)},
	}
	if err := store.SaveGoals(goals); err != nil {
		t.Fatalf("SaveGoals failed: %v", err)
	}

	got, err := store.LoadGoals()
	if err != nil {
		t.Fatalf("LoadGoals failed: %v", err)
	}
	if len(got) != len(goals) {
		t.Fatalf("got %d goals, want %d", len(got), len(goals))
	}
	for i := range goals {
		if !got[i].CreatedAt.Equal(goals[i].CreatedAt) {
			t.Errorf("goal %d CreatedAt = %v, want %v", i, got[i].CreatedAt, goals[i].CreatedAt)
		}
		got[i].CreatedAt = goals[i].CreatedAt
		if got[i] != goals[i] {
			t.Errorf("goal %d = %+v, want %+v", i, got[i], goals[i])
		}
	}
}

func TestCompletedChallenges(t *testing.T) {
	store, _ := setupTestStore(t)

	ids, err := store.LoadCompletedChallenges()
	if err != nil {
		t.Fatalf("LoadCompletedChallenges failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no completed challenges, got %v", ids)
	}

	want := []string{"food-2", "transport-1"}
	if err := store.SaveCompletedChallenges(want); err != nil {
		t.Fatalf("SaveCompletedChallenges failed: %v", err)
	}
	ids, _ = store.LoadCompletedChallenges()
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("LoadCompletedChallenges() = %v, want %v", ids, want)
	}
}

func TestProfile(t *testing.T) {
	store, _ := setupTestStore(t)

	if _, err := store.GetProfile(); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	want := models.CommunityUser{ID: "u1", Username: "Anonymous user", Level: "Beginner", TotalPoints: 50, JoinedAt: "2024-01-15", IsAnonymous: true}
	if err := store.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	want.TotalPoints = 120
	if err := store.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got != want {
		t.Errorf("GetProfile() = %+v, want %+v", got, want)
	}
}

func TestCurrentFootprint(t *testing.T) {
	store, _ := setupTestStore(t)

	if _, err := store.GetCurrentFootprint(); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	want := models.CurrentFootprint{
		Answers: models.QuestionnaireAnswers{
			CarKmPerWeek: 100, VehicleType: models.VehicleDiesel,
			HomeSizeM2: 80, HeatingType: models.HeatingHeatPump,
			ElectricityKWhPerMonth: 250, MeatMealsPerWeek: 4,
		},
		Breakdown: models.FootprintBreakdown{Transport: 988, Energy: 627, Food: 2186, Consumption: 0, Total: 3801},
		UpdatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.SaveCurrentFootprint(want); err != nil {
		t.Fatalf("SaveCurrentFootprint failed: %v", err)
	}

	got, err := store.GetCurrentFootprint()
	if err != nil {
		t.Fatalf("GetCurrentFootprint failed: %v", err)
	}
	if got.Answers != want.Answers || got.Breakdown != want.Breakdown || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("GetCurrentFootprint() = %+v, want %+v", got, want)
	}
}
