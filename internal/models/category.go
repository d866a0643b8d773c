package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrInvalidHeatingType = errors.New("invalid heating type")
	ErrInvalidDifficulty  = errors.New("invalid difficulty")
	ErrInvalidPeriod      = errors.New("invalid period")
)

// Category is one of the footprint buckets. CategoryTotal is only valid as a
// goal target and CategoryGeneral only as an article topic.
type Category string

const (
	CategoryTransport   Category = "transport"
	CategoryEnergy      Category = "energy"
	CategoryFood        Category = "food"
	CategoryConsumption Category = "consumption"
	CategoryTotal       Category = "total"
	CategoryGeneral     Category = "general"
)

// FootprintCategories lists the four footprint buckets in display and
// evaluation order.
var FootprintCategories = []Category{
	CategoryTransport,
	CategoryEnergy,
	CategoryFood,
	CategoryConsumption,
}

// Label returns the capitalised display name.
func (c Category) Label() string {
	switch c {
	case CategoryTransport:
		return "Transport"
	case CategoryEnergy:
		return "Energy"
	case CategoryFood:
		return "Food"
	case CategoryConsumption:
		return "Consumption"
	case CategoryTotal:
		return "Total"
	case CategoryGeneral:
		return "General"
	default:
		return string(c)
	}
}

// Icon returns the emoji used next to the category in listings.
func (c Category) Icon() string {
	switch c {
	case CategoryTransport:
		return "🚗"
	case CategoryEnergy:
		return "🏠"
	case CategoryFood:
		return "🍽️"
	case CategoryConsumption:
		return "🛒"
	case CategoryTotal:
		return "🎯"
	case CategoryGeneral:
		return "🌍"
	default:
		return "•"
	}
}

// IsFootprint reports whether c is one of the four footprint buckets.
func (c Category) IsFootprint() bool {
	switch c {
	case CategoryTransport, CategoryEnergy, CategoryFood, CategoryConsumption:
		return true
	}
	return false
}

// IsGoalTarget reports whether c can be the target of a personal goal.
func (c Category) IsGoalTarget() bool {
	return c.IsFootprint() || c == CategoryTotal
}

// ParseCategory accepts one of the four footprint buckets.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsFootprint() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// ParseGoalCategory accepts a footprint bucket or "total".
func ParseGoalCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsGoalTarget() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// ParseContentCategory accepts a footprint bucket or "general".
func ParseContentCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsFootprint() && c != CategoryGeneral {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// VehicleType is the fuel type of the user's car.
type VehicleType string

const (
	VehicleGasoline VehicleType = "gasoline"
	VehicleDiesel   VehicleType = "diesel"
	VehicleHybrid   VehicleType = "hybrid"
	VehicleElectric VehicleType = "electric"
)

// VehicleTypes lists every accepted vehicle type.
var VehicleTypes = []VehicleType{VehicleGasoline, VehicleDiesel, VehicleHybrid, VehicleElectric}

func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VehicleGasoline, VehicleDiesel, VehicleHybrid, VehicleElectric:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVehicleType, s)
}

// HeatingType is the main heating source of the user's home.
type HeatingType string

const (
	HeatingGas      HeatingType = "gas"
	HeatingElectric HeatingType = "electric"
	HeatingOil      HeatingType = "oil"
	HeatingWood     HeatingType = "wood"
	HeatingHeatPump HeatingType = "heat-pump"
)

// HeatingTypes lists every accepted heating type.
var HeatingTypes = []HeatingType{HeatingGas, HeatingElectric, HeatingOil, HeatingWood, HeatingHeatPump}

func ParseHeatingType(s string) (HeatingType, error) {
	h := HeatingType(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case HeatingGas, HeatingElectric, HeatingOil, HeatingWood, HeatingHeatPump:
		return h, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidHeatingType, s)
}

// Difficulty grades how demanding a challenge is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Period is a relative window used to filter history.
type Period string

const (
	Period3Months Period = "3m"
	Period6Months Period = "6m"
	Period1Year   Period = "1y"
	PeriodAll     Period = "all"
)

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Period3Months, Period6Months, Period1Year, PeriodAll:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (expected 3m, 6m, 1y or all)", ErrInvalidPeriod, s)
}

// Label returns a human readable description of the period.
func (p Period) Label() string {
	switch p {
	case Period3Months:
		return "last 3 months"
	case Period6Months:
		return "last 6 months"
	case Period1Year:
		return "last year"
	case PeriodAll:
		return "all time"
	default:
		return string(p)
	}
}
