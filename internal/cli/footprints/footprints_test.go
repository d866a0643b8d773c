package footprints

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/community"
	"github.com/julianstephens/ecochallenge/internal/config"
	"github.com/julianstephens/ecochallenge/internal/footprint"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/questionnaire"
	"github.com/julianstephens/ecochallenge/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{
		Store:  store,
		Config: &config.Config{Timezone: "UTC"},
		Clock:  func() time.Time { return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC) },
	}
}

func ptr(v float64) *float64 { return &v }

func TestCalcCmd_NoInput(t *testing.T) {
	ctx := setupTestDB(t)

	cmd := &CalcCmd{NoInput: true, Vehicle: "diesel", CarKm: ptr(150), MeatMeals: ptr(99)}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	fp, err := ctx.Store.GetCurrentFootprint()
	if err != nil {
		t.Fatalf("current footprint not saved: %v", err)
	}
	if fp.Answers.VehicleType != models.VehicleDiesel || fp.Answers.CarKmPerWeek != 150 {
		t.Errorf("flags not applied: %+v", fp.Answers)
	}
	// out of range values are clamped
	if fp.Answers.MeatMealsPerWeek != 14 {
		t.Errorf("meat meals = %v, want 14", fp.Answers.MeatMealsPerWeek)
	}

	want, _ := footprint.Estimate(fp.Answers)
	if fp.Breakdown != want {
		t.Errorf("breakdown = %+v, want %+v", fp.Breakdown, want)
	}

	history, _ := ctx.Store.LoadHistory()
	if len(history) != 0 {
		t.Errorf("history should be untouched without --save, got %d", len(history))
	}
}

func TestCalcCmd_KeepsSavedAnswers(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&CalcCmd{NoInput: true, Flights: ptr(4)}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&CalcCmd{NoInput: true, CarKm: ptr(20)}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	fp, _ := ctx.Store.GetCurrentFootprint()
	if fp.Answers.FlightsPerYear != 4 || fp.Answers.CarKmPerWeek != 20 {
		t.Errorf("expected answers from both runs, got %+v", fp.Answers)
	}

	if err := (&CalcCmd{NoInput: true, Fresh: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	fp, _ = ctx.Store.GetCurrentFootprint()
	if fp.Answers != questionnaire.Defaults() {
		t.Errorf("--fresh should reset answers, got %+v", fp.Answers)
	}
}

func TestCalcCmd_InvalidVehicle(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&CalcCmd{NoInput: true, Vehicle: "rocket"}).Run(ctx); err == nil {
		t.Error("expected error for unknown vehicle type")
	}
}

func TestCalcCmd_RejectsNonFiniteFlags(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		ctx := setupTestDB(t)
		if err := (&CalcCmd{NoInput: true, CarKm: ptr(v)}).Run(ctx); err == nil {
			t.Errorf("expected error for --car-km %v", v)
		}
		if _, err := ctx.Store.GetCurrentFootprint(); err == nil {
			t.Errorf("footprint saved for --car-km %v", v)
		}
	}
}

func TestCalcCmd_SaveToHistory(t *testing.T) {
	ctx := setupTestDB(t)
	profile, err := community.NewProfile("fern", false, ctx.Now())
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SaveHistory([]models.HistoricalEntry{
		{ID: "old", Date: "2024-01-01", Data: models.FootprintBreakdown{Total: 20000}},
	}); err != nil {
		t.Fatal(err)
	}

	if err := (&CalcCmd{NoInput: true, Note: "  after moving  "}).Run(ctx); err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	history, err := ctx.Store.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	newest := history[0]
	if newest.Date != "2024-06-15" || newest.Notes != "after moving" || newest.ID == "" {
		t.Errorf("unexpected newest entry: %+v", newest)
	}

	p, _ := ctx.Store.GetProfile()
	if want := 20000 - newest.Data.Total; p.CarbonReduction != want {
		t.Errorf("profile reduction = %d, want %d", p.CarbonReduction, want)
	}
}

func TestDashboardCmd(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&DashboardCmd{}).Run(ctx); err != nil {
		t.Errorf("dashboard without footprint failed: %v", err)
	}
	if err := (&CalcCmd{NoInput: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&DashboardCmd{}).Run(ctx); err != nil {
		t.Errorf("dashboard failed: %v", err)
	}
}
