package footprint

// Reference figures in kg CO2e per person per year.
const (
	NationalAverageKg = 4800
	WorldAverageKg    = 4500
	ClimateTargetKg   = 2000 // compatible with the 1.5°C pathway
)

// Performance grades a total against the reference figures.
type Performance struct {
	Level   string
	Message string
	Tone    Tone
}

// Tone drives the colour used when rendering a performance or a share.
type Tone int

const (
	ToneGood Tone = iota
	ToneFine
	ToneWarning
	ToneDanger
)

// Grade returns the performance level for an annual total.
func Grade(total int) Performance {
	switch {
	case total <= ClimateTargetKg:
		return Performance{Level: "Excellent", Message: "You are already within the climate target!", Tone: ToneGood}
	case float64(total) <= NationalAverageKg*0.7:
		return Performance{Level: "Very good", Message: "Your impact is well below average", Tone: ToneFine}
	case total <= NationalAverageKg:
		return Performance{Level: "Fair", Message: "You are around the average, there is room to improve", Tone: ToneWarning}
	default:
		return Performance{Level: "Needs improvement", Message: "Your impact is high, action is needed", Tone: ToneDanger}
	}
}

// Benchmark is a named reference figure.
type Benchmark struct {
	Label string
	Kg    int
}

// Benchmarks returns the user total alongside the reference figures, in
// display order.
func Benchmarks(total int) []Benchmark {
	return []Benchmark{
		{Label: "You", Kg: total},
		{Label: "National average", Kg: NationalAverageKg},
		{Label: "World average", Kg: WorldAverageKg},
		{Label: "1.5°C target", Kg: ClimateTargetKg},
	}
}

// ScaleMax returns the largest of the total and the averages, used to size
// comparison bars.
func ScaleMax(total int) int {
	m := total
	for _, v := range []int{NationalAverageKg, WorldAverageKg} {
		if v > m {
			m = v
		}
	}
	return m
}
