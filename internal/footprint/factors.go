package footprint

import (
	"fmt"

	"github.com/julianstephens/ecochallenge/internal/models"
)

// Fixed emission rates. The values are illustrative, not scientific.
const (
	WeeksPerYear  = 52
	MonthsPerYear = 12

	TransitKgPerHour = 0.1   // kg CO2 per hour of public transport
	FlightKg         = 500.0 // kg CO2 per flight

	HeatingKWhPerM2     = 100.0 // yearly heating demand per square metre
	ElectricityKgPerKWh = 0.057

	FoodBaselineKg   = 1500.0
	MeatMealKg       = 3.3
	LocalFoodSavedKg = 200.0 // at 100% local food
	FoodWasteAddedKg = 300.0 // at 100% food waste

	ClothingKgPerEuro    = 0.02
	ElectronicsKgPerEuro = 0.05
	RecyclingSavedKg     = 100.0 // at 100% recycling
)

// VehicleFactor returns kg CO2 per km for the vehicle type.
func VehicleFactor(v models.VehicleType) (float64, error) {
	switch v {
	case models.VehicleGasoline:
		return 0.21, nil
	case models.VehicleDiesel:
		return 0.19, nil
	case models.VehicleHybrid:
		return 0.12, nil
	case models.VehicleElectric:
		return 0.05, nil
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidVehicleType, v)
	}
}

// HeatingFactor returns kg CO2 per kWh for the heating type.
func HeatingFactor(h models.HeatingType) (float64, error) {
	switch h {
	case models.HeatingGas:
		return 0.234, nil
	case models.HeatingElectric:
		return 0.057, nil
	case models.HeatingOil:
		return 0.324, nil
	case models.HeatingWood:
		return 0.013, nil
	case models.HeatingHeatPump:
		return 0.057, nil
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidHeatingType, h)
	}
}
