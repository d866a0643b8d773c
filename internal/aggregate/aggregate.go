// Package aggregate derives period windows, trends, averages and category
// shares from footprint history. History slices are ordered newest first and
// are never modified.
package aggregate

import (
	"math"
	"time"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
)

// Cutoff returns the first day included in the period, in now's location.
// The cutoff is truncated to midnight, so an entry dated exactly one period
// before today is kept rather than dropped by the time of day.
// The second return value is false for PeriodAll or an unknown period.
func Cutoff(period models.Period, now time.Time) (time.Time, bool) {
	var c time.Time
	switch period {
	case models.Period3Months:
		c = now.AddDate(0, -3, 0)
	case models.Period6Months:
		c = now.AddDate(0, -6, 0)
	case models.Period1Year:
		c = now.AddDate(-1, 0, 0)
	default:
		return time.Time{}, false
	}
	return time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, now.Location()), true
}

// FilterByPeriod keeps the entries dated on or after the period cutoff.
// PeriodAll returns a copy of the full history. Entries with an unparseable
// date are dropped from bounded periods.
func FilterByPeriod(history []models.HistoricalEntry, period models.Period, now time.Time) []models.HistoricalEntry {
	cutoff, bounded := Cutoff(period, now)
	if !bounded {
		out := make([]models.HistoricalEntry, len(history))
		copy(out, history)
		return out
	}

	out := make([]models.HistoricalEntry, 0, len(history))
	for _, e := range history {
		d, err := time.ParseInLocation(constants.DateFormat, e.Date, now.Location())
		if err != nil {
			continue
		}
		if !d.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// Trend compares the newest and the oldest entry of a window.
type Trend struct {
	Latest         models.HistoricalEntry
	Oldest         models.HistoricalEntry
	AbsoluteChange int
	PercentChange  float64
	IsImprovement  bool
}

// ComputeTrend needs at least two entries. PercentChange is 0 when the
// oldest total is 0.
func ComputeTrend(filtered []models.HistoricalEntry) (Trend, bool) {
	if len(filtered) < 2 {
		return Trend{}, false
	}

	latest := filtered[0]
	oldest := filtered[len(filtered)-1]
	change := latest.Data.Total - oldest.Data.Total

	var pct float64
	if oldest.Data.Total != 0 {
		pct = float64(change) / float64(oldest.Data.Total) * 100
	}

	return Trend{
		Latest:         latest,
		Oldest:         oldest,
		AbsoluteChange: change,
		PercentChange:  pct,
		IsImprovement:  change < 0,
	}, true
}

// ComputeAverages returns the per-category mean, each rounded on its own.
func ComputeAverages(filtered []models.HistoricalEntry) (models.FootprintBreakdown, bool) {
	if len(filtered) == 0 {
		return models.FootprintBreakdown{}, false
	}

	var transport, energy, food, consumption, total float64
	for _, e := range filtered {
		transport += float64(e.Data.Transport)
		energy += float64(e.Data.Energy)
		food += float64(e.Data.Food)
		consumption += float64(e.Data.Consumption)
		total += float64(e.Data.Total)
	}

	n := float64(len(filtered))
	return models.FootprintBreakdown{
		Transport:   int(math.Round(transport / n)),
		Energy:      int(math.Round(energy / n)),
		Food:        int(math.Round(food / n)),
		Consumption: int(math.Round(consumption / n)),
		Total:       int(math.Round(total / n)),
	}, true
}

// Shares holds each category's percentage of the total.
type Shares struct {
	Transport   float64
	Energy      float64
	Food        float64
	Consumption float64
}

// Of returns the share for a footprint category.
func (s Shares) Of(c models.Category) float64 {
	switch c {
	case models.CategoryTransport:
		return s.Transport
	case models.CategoryEnergy:
		return s.Energy
	case models.CategoryFood:
		return s.Food
	case models.CategoryConsumption:
		return s.Consumption
	default:
		return 0
	}
}

// ComputeShares returns zero shares when the total is not positive.
func ComputeShares(b models.FootprintBreakdown) Shares {
	if b.Total <= 0 {
		return Shares{}
	}
	t := float64(b.Total)
	return Shares{
		Transport:   float64(b.Transport) / t * 100,
		Energy:      float64(b.Energy) / t * 100,
		Food:        float64(b.Food) / t * 100,
		Consumption: float64(b.Consumption) / t * 100,
	}
}
