package footprints

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/cli/history"
	"github.com/julianstephens/ecochallenge/internal/footprint"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/questionnaire"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/utils"
)

// CalcCmd runs the calculator. Flags preset answers; without --no-input the
// interactive form opens seeded with them.
type CalcCmd struct {
	NoInput bool   `help:"Skip the interactive form and use flags and saved answers only."`
	Save    bool   `help:"Append the result to history."`
	Note    string `help:"Note stored with the history entry (implies --save)."`
	Fresh   bool   `help:"Start from default answers instead of the last saved ones."`
	Vehicle string `help:"Vehicle type (gasoline, diesel, hybrid, electric)."`
	Heating string `help:"Heating type (gas, electric, oil, wood, heat-pump)."`

	CarKm        *float64 `name:"car-km" help:"Car distance per week in km."`
	TransitHours *float64 `name:"transit-hours" help:"Public transport hours per week."`
	Flights      *float64 `help:"Flights per year."`
	HomeSize     *float64 `name:"home-size" help:"Home size in m²."`
	Electricity  *float64 `help:"Electricity use per month in kWh."`
	MeatMeals    *float64 `name:"meat-meals" help:"Meat meals per week."`
	LocalFood    *float64 `name:"local-food" help:"Share of local food in %."`
	FoodWaste    *float64 `name:"food-waste" help:"Share of food wasted in %."`
	Clothing     *float64 `help:"Clothing spend per year in €."`
	Electronics  *float64 `help:"Electronics spend per year in €."`
	Recycling    *float64 `help:"Share of waste recycled in %."`
}

// overrides maps question keys to the flag values that were set.
func (c *CalcCmd) overrides() map[string]*float64 {
	return map[string]*float64{
		"car-km":        c.CarKm,
		"transit-hours": c.TransitHours,
		"flights":       c.Flights,
		"home-size":     c.HomeSize,
		"electricity":   c.Electricity,
		"meat-meals":    c.MeatMeals,
		"local-food":    c.LocalFood,
		"food-waste":    c.FoodWaste,
		"clothing":      c.Clothing,
		"electronics":   c.Electronics,
		"recycling":     c.Recycling,
	}
}

// answers builds the starting answers from saved state and flags.
func (c *CalcCmd) answers(ctx *cli.Context) (models.QuestionnaireAnswers, error) {
	a := questionnaire.Defaults()
	if !c.Fresh {
		fp, err := ctx.Store.GetCurrentFootprint()
		switch {
		case err == nil:
			a = fp.Answers
		case !errors.Is(err, storage.ErrNotFound):
			return a, fmt.Errorf("failed to load saved answers: %w", err)
		}
	}

	if c.Vehicle != "" {
		v, err := models.ParseVehicleType(c.Vehicle)
		if err != nil {
			return a, err
		}
		a.VehicleType = v
	}
	if c.Heating != "" {
		h, err := models.ParseHeatingType(c.Heating)
		if err != nil {
			return a, err
		}
		a.HeatingType = h
	}

	for key, v := range c.overrides() {
		if v == nil {
			continue
		}
		q, ok := questionnaire.Lookup(key)
		if !ok {
			return a, fmt.Errorf("unknown question %q", key)
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return a, fmt.Errorf("--%s must be a finite number", key)
		}
		*q.Ptr(&a) = *v
	}
	return questionnaire.Clamp(a), nil
}

func (c *CalcCmd) Run(ctx *cli.Context) error {
	answers, err := c.answers(ctx)
	if err != nil {
		return err
	}

	if !c.NoInput {
		fm := questionnaire.NewFormModel(answers)
		if err := questionnaire.NewForm(fm).Run(); err != nil {
			return fmt.Errorf("calculator cancelled: %w", err)
		}
		if answers, err = fm.Answers(); err != nil {
			return err
		}
	}

	breakdown, err := footprint.Estimate(answers)
	if err != nil {
		return err
	}

	now := ctx.Now()
	if err := ctx.Store.SaveCurrentFootprint(models.CurrentFootprint{
		Answers:   answers,
		Breakdown: breakdown,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("failed to save footprint: %w", err)
	}

	printBreakdown(breakdown)
	printBenchmarks(breakdown.Total)
	printEquivalency(breakdown.Total)
	printRecommendations(ctx.GetAdvisor().Recommendations(breakdown))

	if c.Save || c.Note != "" {
		entry := models.HistoricalEntry{
			ID:    uuid.NewString(),
			Date:  utils.Today(now),
			Data:  breakdown,
			Notes: strings.TrimSpace(c.Note),
		}
		if err := history.Insert(ctx, entry); err != nil {
			return err
		}
		fmt.Printf("✓ Saved to history (%s)\n", entry.Date)
	}

	return nil
}
