package footprint

import (
	"math"

	"github.com/julianstephens/ecochallenge/internal/models"
)

// Estimate converts questionnaire answers into an annual breakdown.
//
// The total is the sum of the unrounded categories; all five figures are
// then rounded on their own. The only failure is an unknown vehicle or
// heating type.
func Estimate(a models.QuestionnaireAnswers) (models.FootprintBreakdown, error) {
	perKm, err := VehicleFactor(a.VehicleType)
	if err != nil {
		return models.FootprintBreakdown{}, err
	}
	perKWh, err := HeatingFactor(a.HeatingType)
	if err != nil {
		return models.FootprintBreakdown{}, err
	}

	transport := a.CarKmPerWeek*WeeksPerYear*perKm +
		a.TransitHoursPerWeek*WeeksPerYear*TransitKgPerHour +
		a.FlightsPerYear*FlightKg

	energy := a.HomeSizeM2*HeatingKWhPerM2*perKWh/1000 +
		a.ElectricityKWhPerMonth*MonthsPerYear*ElectricityKgPerKWh

	food := math.Max(0, FoodBaselineKg+
		a.MeatMealsPerWeek*WeeksPerYear*MeatMealKg-
		(a.LocalFoodPercent/100)*LocalFoodSavedKg+
		(a.FoodWastePercent/100)*FoodWasteAddedKg)

	consumption := math.Max(0, a.ClothingSpend*ClothingKgPerEuro+
		a.ElectronicsSpend*ElectronicsKgPerEuro-
		(a.RecyclingPercent/100)*RecyclingSavedKg)

	total := transport + energy + food + consumption

	return models.FootprintBreakdown{
		Transport:   round(transport),
		Energy:      round(energy),
		Food:        round(food),
		Consumption: round(consumption),
		Total:       round(total),
	}, nil
}

func round(v float64) int {
	return int(math.Round(v))
}
