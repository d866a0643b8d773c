// Package equivalency turns kg CO2e figures into everyday comparisons and
// formats numbers with thousands separators.
package equivalency

import (
	"fmt"
	"math"
)

// Conversion factors in kg CO2e per unit of the comparison.
const (
	CarKmFactor           = 0.21    // a gasoline car, matching the calculator factor
	SmartphoneChargeKg    = 0.00822 // one full smartphone charge
	TreeSeedlingKg        = 60.0    // absorbed by one seedling grown for 10 years
	MinEquivalencyKg      = 1.0     // below this the comparisons are meaningless
	LargeNumberThreshold  = 1_000_000
	BillionThreshold      = 1_000_000_000
	maxSupportedKilograms = 1e15
)

type constError string

func (e constError) Error() string { return string(e) }

var (
	ErrNegativeValue       = constError("negative carbon value")
	ErrCalculationOverflow = constError("calculation overflow")
)

// Kind identifies a comparison.
type Kind string

const (
	KindCarKm            Kind = "car_km"
	KindSmartphoneCharge Kind = "smartphone_charges"
	KindTreeSeedlings    Kind = "tree_seedlings"
)

// Result is one comparison for a figure.
type Result struct {
	Kind      Kind
	Value     float64
	Formatted string
	Label     string
}

// Output holds every comparison for an input value. IsEmpty is set when the
// value is below MinEquivalencyKg.
type Output struct {
	InputKg     float64
	Results     []Result
	DisplayText string
	IsEmpty     bool
}

// Calculate computes the comparisons for kg CO2e.
func Calculate(kg float64) (Output, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg > maxSupportedKilograms {
		return Output{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Output{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyKg {
		return Output{InputKg: kg, IsEmpty: true}, nil
	}

	km := kg / CarKmFactor
	phones := kg / SmartphoneChargeKg
	trees := kg / TreeSeedlingKg

	results := []Result{
		{Kind: KindCarKm, Value: km, Formatted: formatValue(km), Label: "km driven by car"},
		{Kind: KindSmartphoneCharge, Value: phones, Formatted: formatValue(phones), Label: "smartphone charges"},
		{Kind: KindTreeSeedlings, Value: trees, Formatted: formatValue(trees), Label: "tree seedlings grown for 10 years"},
	}

	return Output{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s km, charging ~%s smartphones or growing ~%s tree seedlings for 10 years",
			results[0].Formatted, results[1].Formatted, results[2].Formatted),
	}, nil
}

func formatValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
