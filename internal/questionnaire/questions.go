// Package questionnaire describes the calculator steps, their ranges and
// defaults, and builds the interactive form used to fill them in.
package questionnaire

import (
	"math"

	"github.com/julianstephens/ecochallenge/internal/models"
)

// Question is one numeric calculator field.
type Question struct {
	Key     string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	field   func(a *models.QuestionnaireAnswers) *float64
}

// Ptr returns the answer field backing the question.
func (q Question) Ptr(a *models.QuestionnaireAnswers) *float64 {
	return q.field(a)
}

// Clamp limits v to the question range. NaN maps to Min.
func (q Question) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return q.Min
	}
	return math.Max(q.Min, math.Min(v, q.Max))
}

// Step groups the questions shown on one calculator page.
type Step struct {
	Category  models.Category
	Title     string
	Questions []Question
}

// Steps lists the calculator pages in order.
var Steps = []Step{
	{
		Category: models.CategoryTransport,
		Title:    "Transport",
		Questions: []Question{
			{Key: "car-km", Label: "Car distance per week", Unit: "km", Min: 0, Max: 1000, Step: 10, Default: 0,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.CarKmPerWeek }},
			{Key: "transit-hours", Label: "Public transport per week", Unit: "hours", Min: 0, Max: 40, Step: 1, Default: 0,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.TransitHoursPerWeek }},
			{Key: "flights", Label: "Flights per year", Unit: "flights", Min: 0, Max: 20, Step: 1, Default: 0,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.FlightsPerYear }},
		},
	},
	{
		Category: models.CategoryEnergy,
		Title:    "Home energy",
		Questions: []Question{
			{Key: "home-size", Label: "Home size", Unit: "m²", Min: 20, Max: 300, Step: 10, Default: 100,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.HomeSizeM2 }},
			{Key: "electricity", Label: "Electricity per month", Unit: "kWh", Min: 50, Max: 500, Step: 10, Default: 100,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.ElectricityKWhPerMonth }},
		},
	},
	{
		Category: models.CategoryFood,
		Title:    "Food",
		Questions: []Question{
			{Key: "meat-meals", Label: "Meat meals per week", Unit: "meals", Min: 0, Max: 14, Step: 1, Default: 3,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.MeatMealsPerWeek }},
			{Key: "local-food", Label: "Local food", Unit: "%", Min: 0, Max: 100, Step: 5, Default: 50,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.LocalFoodPercent }},
			{Key: "food-waste", Label: "Food wasted", Unit: "%", Min: 0, Max: 50, Step: 5, Default: 20,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.FoodWastePercent }},
		},
	},
	{
		Category: models.CategoryConsumption,
		Title:    "Consumption",
		Questions: []Question{
			{Key: "clothing", Label: "Clothing spend per year", Unit: "€", Min: 0, Max: 2000, Step: 50, Default: 500,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.ClothingSpend }},
			{Key: "electronics", Label: "Electronics spend per year", Unit: "€", Min: 0, Max: 1000, Step: 25, Default: 200,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.ElectronicsSpend }},
			{Key: "recycling", Label: "Waste recycled", Unit: "%", Min: 0, Max: 100, Step: 10, Default: 70,
				field: func(a *models.QuestionnaireAnswers) *float64 { return &a.RecyclingPercent }},
		},
	},
}

// Questions returns every numeric question across all steps.
func Questions() []Question {
	var out []Question
	for _, s := range Steps {
		out = append(out, s.Questions...)
	}
	return out
}

// Lookup returns the question with the given key.
func Lookup(key string) (Question, bool) {
	for _, q := range Questions() {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// Defaults returns the answers a fresh calculator session starts with.
func Defaults() models.QuestionnaireAnswers {
	a := models.QuestionnaireAnswers{
		VehicleType: models.VehicleGasoline,
		HeatingType: models.HeatingGas,
	}
	for _, q := range Questions() {
		*q.Ptr(&a) = q.Default
	}
	return a
}

// Clamp returns a copy of a with every numeric field limited to its range.
// Enum fields are left untouched.
func Clamp(a models.QuestionnaireAnswers) models.QuestionnaireAnswers {
	for _, q := range Questions() {
		p := q.Ptr(&a)
		*p = q.Clamp(*p)
	}
	return a
}
