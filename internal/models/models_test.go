package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		in      string
		want    VehicleType
		wantErr bool
	}{
		{"gasoline", VehicleGasoline, false},
		{"Diesel", VehicleDiesel, false},
		{" hybrid ", VehicleHybrid, false},
		{"electric", VehicleElectric, false},
		{"essence", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVehicleType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVehicleType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidVehicleType) {
				t.Errorf("expected ErrInvalidVehicleType, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVehicleType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHeatingType(t *testing.T) {
	for _, h := range HeatingTypes {
		got, err := ParseHeatingType(string(h))
		if err != nil || got != h {
			t.Errorf("ParseHeatingType(%q) = %q, %v", h, got, err)
		}
	}

	if _, err := ParseHeatingType("coal"); !errors.Is(err, ErrInvalidHeatingType) {
		t.Errorf("expected ErrInvalidHeatingType, got %v", err)
	}
}

func TestParseCategoryVariants(t *testing.T) {
	if _, err := ParseCategory("total"); err == nil {
		t.Error("total should not be a footprint category")
	}
	if c, err := ParseGoalCategory("total"); err != nil || c != CategoryTotal {
		t.Errorf("ParseGoalCategory(total) = %q, %v", c, err)
	}
	if c, err := ParseContentCategory("general"); err != nil || c != CategoryGeneral {
		t.Errorf("ParseContentCategory(general) = %q, %v", c, err)
	}
	if _, err := ParseGoalCategory("general"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"3m", "6m", "1y", "all", "ALL"} {
		if _, err := ParsePeriod(s); err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePeriod("2w"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestFootprintBreakdown_Value(t *testing.T) {
	b := FootprintBreakdown{Transport: 1, Energy: 2, Food: 3, Consumption: 4, Total: 10}

	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryTransport, 1},
		{CategoryEnergy, 2},
		{CategoryFood, 3},
		{CategoryConsumption, 4},
		{CategoryTotal, 10},
	}
	for _, tt := range tests {
		got, err := b.Value(tt.cat)
		if err != nil {
			t.Fatalf("Value(%q) unexpected error: %v", tt.cat, err)
		}
		if got != tt.want {
			t.Errorf("Value(%q) = %d, want %d", tt.cat, got, tt.want)
		}
	}

	if _, err := b.Value(CategoryGeneral); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestPersonalGoal_Validate(t *testing.T) {
	valid := PersonalGoal{
		ID:              "goal-1",
		Title:           "Drive less",
		Category:        CategoryTransport,
		TargetReduction: 500,
		TargetDate:      "2026-12-31",
		CreatedAt:       time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(g *PersonalGoal)
		wantErr bool
	}{
		{"valid goal", func(g *PersonalGoal) {}, false},
		{"total category", func(g *PersonalGoal) { g.Category = CategoryTotal }, false},
		{"empty title", func(g *PersonalGoal) { g.Title = "  " }, true},
		{"general category", func(g *PersonalGoal) { g.Category = CategoryGeneral }, true},
		{"zero target", func(g *PersonalGoal) { g.TargetReduction = 0 }, true},
		{"negative target", func(g *PersonalGoal) { g.TargetReduction = -10 }, true},
		{"bad date", func(g *PersonalGoal) { g.TargetDate = "31/12/2026" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			err := g.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettingsRoundTripThroughMap(t *testing.T) {
	s := DefaultSettings()
	s.Timezone = "Europe/Paris"
	s.ReminderLeadDays = 3

	got, err := MapToSettings(SettingsToMap(s))
	if err != nil {
		t.Fatalf("MapToSettings failed: %v", err)
	}
	if got != s {
		t.Errorf("settings mismatch: got %+v, want %+v", got, s)
	}
}

func TestMapToSettings_InvalidValues(t *testing.T) {
	if _, err := MapToSettings(map[string]string{"reminder_lead_days": "soon"}); err == nil {
		t.Error("expected error for non-numeric lead days")
	}
	if _, err := MapToSettings(map[string]string{"default_period": "forever"}); err == nil {
		t.Error("expected error for unknown period")
	}
}
