package goals

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/julianstephens/ecochallenge/internal/models"
)

func TestProgress(t *testing.T) {
	current := models.FootprintBreakdown{Transport: 1000, Energy: 0, Food: 200, Consumption: 400, Total: 1600}

	tests := []struct {
		name   string
		cat    models.Category
		target float64
		want   float64
	}{
		{"half of transport", models.CategoryTransport, 500, 50},
		{"capped at 100", models.CategoryFood, 500, 100},
		{"zero current value counts as achieved", models.CategoryEnergy, 100, 100},
		{"total category", models.CategoryTotal, 400, 25},
		{"consumption", models.CategoryConsumption, 100, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.PersonalGoal{Category: tt.cat, TargetReduction: tt.target}
			got, err := Progress(g, current)
			if err != nil {
				t.Fatalf("Progress failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_NonFiniteTarget(t *testing.T) {
	current := models.FootprintBreakdown{Transport: 1000, Total: 1000}

	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 100},
		{"negative infinity", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.PersonalGoal{Category: models.CategoryTransport, TargetReduction: tt.target}
			got, err := Progress(g, current)
			if err != nil {
				t.Fatalf("Progress failed: %v", err)
			}
			if math.IsNaN(got) || got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_InvalidCategory(t *testing.T) {
	g := models.PersonalGoal{Category: "water", TargetReduction: 10}
	if _, err := Progress(g, models.FootprintBreakdown{Total: 10}); !errors.Is(err, models.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		date string
		want int
	}{
		{"2026-03-02", 1},
		{"2026-03-11", 10},
		{"2026-03-01", 0},
		{"2026-02-27", -2},
	}

	for _, tt := range tests {
		got, err := DaysRemaining(models.PersonalGoal{TargetDate: tt.date}, now)
		if err != nil {
			t.Fatalf("DaysRemaining(%s) failed: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("DaysRemaining(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}

	if _, err := DaysRemaining(models.PersonalGoal{TargetDate: "soon"}, now); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestNew(t *testing.T) {
	now := time.Now()
	g, err := New("Cycle to work", "", models.CategoryTransport, 300, "2026-12-31", now)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.ID == "" || g.Completed || !g.CreatedAt.Equal(now) {
		t.Errorf("unexpected goal: %+v", g)
	}

	if _, err := New("", "", models.CategoryTransport, 300, "2026-12-31", now); err == nil {
		t.Error("expected validation error for empty title")
	}

	for _, target := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := New("Cycle to work", "", models.CategoryTransport, target, "2026-12-31", now); err == nil {
			t.Errorf("expected validation error for target %v", target)
		}
	}
}

func TestCollectionEdits(t *testing.T) {
	a := models.PersonalGoal{ID: "aaaa-1", Title: "A"}
	b := models.PersonalGoal{ID: "bbbb-2", Title: "B"}
	original := []models.PersonalGoal{a}

	added := Add(original, b)
	if len(added) != 2 || added[0].ID != b.ID {
		t.Fatalf("Add should prepend, got %+v", added)
	}
	if len(original) != 1 {
		t.Fatal("Add modified its input")
	}

	edited := b
	edited.Title = "B2"
	updated, err := Update(added, edited)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated[0].Title != "B2" || added[0].Title != "B" {
		t.Errorf("Update result %q, input %q", updated[0].Title, added[0].Title)
	}

	toggled, err := ToggleCompletion(updated, a.ID)
	if err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if !toggled[1].Completed || updated[1].Completed {
		t.Error("ToggleCompletion should flip only the copy")
	}

	active, completed := SplitByStatus(toggled)
	if len(active) != 1 || len(completed) != 1 || completed[0].ID != a.ID {
		t.Errorf("SplitByStatus = %v / %v", active, completed)
	}

	removed, err := Remove(toggled, b.ID)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(removed) != 1 || removed[0].ID != a.ID || len(toggled) != 2 {
		t.Errorf("Remove result %+v", removed)
	}

	for _, fn := range []func() error{
		func() error { _, err := Update(removed, models.PersonalGoal{ID: "missing"}); return err },
		func() error { _, err := Remove(removed, "missing"); return err },
		func() error { _, err := ToggleCompletion(removed, "missing"); return err },
	} {
		if err := fn(); !errors.Is(err, ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	}
}

func TestFind(t *testing.T) {
	list := []models.PersonalGoal{{ID: "abcd-1111"}, {ID: "abcd-2222"}, {ID: "ffff-3333"}}

	if g, err := Find(list, "ffff"); err != nil || g.ID != "ffff-3333" {
		t.Errorf("Find(prefix) = %+v, %v", g, err)
	}
	if _, err := Find(list, "abcd"); err == nil {
		t.Error("expected ambiguity error")
	}
	if _, err := Find(list, "abc"); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("short prefixes must not match, got %v", err)
	}
}
