package questionnaire

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecochallenge/internal/models"
)

// FormModel holds the raw form values bound to the huh fields.
type FormModel struct {
	VehicleType models.VehicleType
	HeatingType models.HeatingType
	Values      map[string]*string
}

// NewFormModel seeds the form from existing answers.
func NewFormModel(a models.QuestionnaireAnswers) *FormModel {
	fm := &FormModel{
		VehicleType: a.VehicleType,
		HeatingType: a.HeatingType,
		Values:      make(map[string]*string),
	}
	for _, q := range Questions() {
		s := strconv.FormatFloat(*q.Ptr(&a), 'f', -1, 64)
		fm.Values[q.Key] = &s
	}
	return fm
}

// Answers parses and clamps the form values.
func (fm *FormModel) Answers() (models.QuestionnaireAnswers, error) {
	a := models.QuestionnaireAnswers{VehicleType: fm.VehicleType, HeatingType: fm.HeatingType}
	for _, q := range Questions() {
		raw := ""
		if p := fm.Values[q.Key]; p != nil {
			raw = *p
		}
		v, err := parseNumber(raw)
		if err != nil {
			return models.QuestionnaireAnswers{}, fmt.Errorf("%s: %w", q.Label, err)
		}
		*q.Ptr(&a) = v
	}
	return Clamp(a), nil
}

// NewForm creates the calculator form, one group per step.
func NewForm(fm *FormModel) *huh.Form {
	groups := make([]*huh.Group, 0, len(Steps))
	for _, s := range Steps {
		var fields []huh.Field
		switch s.Category {
		case models.CategoryTransport:
			fields = append(fields, vehicleSelect(fm))
		case models.CategoryEnergy:
			fields = append(fields, heatingSelect(fm))
		}
		for _, q := range s.Questions {
			fields = append(fields, numberInput(q, fm))
		}
		groups = append(groups, huh.NewGroup(fields...).Title(s.Title))
	}
	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}

func vehicleSelect(fm *FormModel) huh.Field {
	return huh.NewSelect[models.VehicleType]().
		Title("Car type").
		Options(
			huh.NewOption("Gasoline", models.VehicleGasoline),
			huh.NewOption("Diesel", models.VehicleDiesel),
			huh.NewOption("Hybrid", models.VehicleHybrid),
			huh.NewOption("Electric", models.VehicleElectric),
		).
		Value(&fm.VehicleType)
}

func heatingSelect(fm *FormModel) huh.Field {
	return huh.NewSelect[models.HeatingType]().
		Title("Heating").
		Options(
			huh.NewOption("Gas", models.HeatingGas),
			huh.NewOption("Electric", models.HeatingElectric),
			huh.NewOption("Oil", models.HeatingOil),
			huh.NewOption("Wood", models.HeatingWood),
			huh.NewOption("Heat pump", models.HeatingHeatPump),
		).
		Value(&fm.HeatingType)
}

func numberInput(q Question, fm *FormModel) huh.Field {
	return huh.NewInput().
		Title(fmt.Sprintf("%s (%s)", q.Label, q.Unit)).
		Description(fmt.Sprintf("%g to %g, step %g", q.Min, q.Max, q.Step)).
		Value(fm.Values[q.Key]).
		Validate(func(s string) error {
			v, err := parseNumber(s)
			if err != nil {
				return err
			}
			if v < q.Min || v > q.Max {
				return fmt.Errorf("must be between %g and %g", q.Min, q.Max)
			}
			return nil
		})
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}
