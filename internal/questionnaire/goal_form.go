package questionnaire

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/goals"
	"github.com/julianstephens/ecochallenge/internal/models"
)

// GoalFormModel holds the raw values of the goal form.
type GoalFormModel struct {
	Title       string
	Description string
	Category    models.Category
	Target      string
	TargetDate  string
}

// NewGoalFormModel seeds the form from g, or with a three month deadline
// when g is nil.
func NewGoalFormModel(g *models.PersonalGoal, now time.Time) *GoalFormModel {
	if g == nil {
		return &GoalFormModel{
			Category:   models.CategoryTransport,
			TargetDate: now.AddDate(0, 3, 0).Format(constants.DateFormat),
		}
	}
	return &GoalFormModel{
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		Target:      strconv.FormatFloat(g.TargetReduction, 'f', -1, 64),
		TargetDate:  g.TargetDate,
	}
}

// Goal builds a new validated goal from the form values.
func (fm *GoalFormModel) Goal(now time.Time) (models.PersonalGoal, error) {
	target, err := parseTarget(fm.Target)
	if err != nil {
		return models.PersonalGoal{}, err
	}
	return goals.New(strings.TrimSpace(fm.Title), strings.TrimSpace(fm.Description), fm.Category, target, strings.TrimSpace(fm.TargetDate), now)
}

// Apply copies the form values onto an existing goal.
func (fm *GoalFormModel) Apply(g models.PersonalGoal) (models.PersonalGoal, error) {
	target, err := parseTarget(fm.Target)
	if err != nil {
		return models.PersonalGoal{}, err
	}
	g.Title = strings.TrimSpace(fm.Title)
	g.Description = strings.TrimSpace(fm.Description)
	g.Category = fm.Category
	g.TargetReduction = target
	g.TargetDate = strings.TrimSpace(fm.TargetDate)
	if err := g.Validate(); err != nil {
		return models.PersonalGoal{}, err
	}
	return g, nil
}

func parseTarget(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("target reduction must be a positive number of kg")
	}
	return v, nil
}

// NewGoalForm creates the add/edit goal form.
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	categories := append(append([]models.Category(nil), models.FootprintCategories...), models.CategoryTotal)
	options := make([]huh.Option[models.Category], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(c.Icon()+" "+c.Label(), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&fm.Description),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(options...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Target reduction (kg CO₂e)").
				Value(&fm.Target).
				Validate(func(s string) error {
					_, err := parseTarget(s)
					return err
				}),
			huh.NewInput().
				Title("Target date (YYYY-MM-DD)").
				Value(&fm.TargetDate).
				Validate(func(s string) error {
					if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use the YYYY-MM-DD format")
					}
					return nil
				}),
		).Title("Personal goal"),
	).WithTheme(huh.ThemeDracula())
}
