package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/ecochallenge/internal/constants"
)

// QuestionnaireAnswers holds the raw calculator input. Numeric fields are
// expected to be clamped to the questionnaire ranges before estimation.
type QuestionnaireAnswers struct {
	CarKmPerWeek           float64     `json:"car_km_per_week"`
	VehicleType            VehicleType `json:"vehicle_type"`
	TransitHoursPerWeek    float64     `json:"transit_hours_per_week"`
	FlightsPerYear         float64     `json:"flights_per_year"`
	HomeSizeM2             float64     `json:"home_size_m2"`
	HeatingType            HeatingType `json:"heating_type"`
	ElectricityKWhPerMonth float64     `json:"electricity_kwh_per_month"`
	MeatMealsPerWeek       float64     `json:"meat_meals_per_week"`
	LocalFoodPercent       float64     `json:"local_food_percent"`
	FoodWastePercent       float64     `json:"food_waste_percent"`
	ClothingSpend          float64     `json:"clothing_spend"`
	ElectronicsSpend       float64     `json:"electronics_spend"`
	RecyclingPercent       float64     `json:"recycling_percent"`
}

// FootprintBreakdown is an annual estimate in kg CO2e. Each field is rounded
// independently so Total may differ slightly from the sum of the categories.
type FootprintBreakdown struct {
	Transport   int `json:"transport" yaml:"transport"`
	Energy      int `json:"energy" yaml:"energy"`
	Food        int `json:"food" yaml:"food"`
	Consumption int `json:"consumption" yaml:"consumption"`
	Total       int `json:"total" yaml:"total"`
}

// Value returns the figure for a category, including CategoryTotal.
func (b FootprintBreakdown) Value(c Category) (int, error) {
	switch c {
	case CategoryTransport:
		return b.Transport, nil
	case CategoryEnergy:
		return b.Energy, nil
	case CategoryFood:
		return b.Food, nil
	case CategoryConsumption:
		return b.Consumption, nil
	case CategoryTotal:
		return b.Total, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
}

// IsZero reports whether no estimate has been recorded.
func (b FootprintBreakdown) IsZero() bool {
	return b == FootprintBreakdown{}
}

// HistoricalEntry is a dated snapshot of a breakdown. Collections of entries
// are kept newest first.
type HistoricalEntry struct {
	ID    string             `json:"id" yaml:"id"`
	Date  string             `json:"date" yaml:"date"` // YYYY-MM-DD format
	Data  FootprintBreakdown `json:"data" yaml:"data"`
	Notes string             `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (e *HistoricalEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("history entry id cannot be empty")
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return nil
}

// CurrentFootprint is the latest calculator result and the answers that
// produced it.
type CurrentFootprint struct {
	Answers   QuestionnaireAnswers `json:"answers"`
	Breakdown FootprintBreakdown   `json:"breakdown"`
	UpdatedAt time.Time            `json:"updated_at"`
}
