// Package goals computes goal progress and applies read-compute-replace
// edits to goal collections. Functions never modify their input slices.
package goals

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
)

var ErrGoalNotFound = errors.New("goal not found")

// New builds a validated goal with a fresh id.
func New(title, description string, category models.Category, target float64, targetDate string, now time.Time) (models.PersonalGoal, error) {
	g := models.PersonalGoal{
		ID:              uuid.NewString(),
		Title:           title,
		Description:     description,
		Category:        category,
		TargetReduction: target,
		TargetDate:      targetDate,
		CreatedAt:       now,
	}
	if err := g.Validate(); err != nil {
		return models.PersonalGoal{}, err
	}
	return g, nil
}

// Progress is the target reduction as a percentage of the current value of
// the goal's category, clamped to [0, 100]. A current value of zero or less
// counts as fully achieved. A NaN target counts as no progress.
func Progress(g models.PersonalGoal, current models.FootprintBreakdown) (float64, error) {
	v, err := current.Value(g.Category)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 100, nil
	}
	if math.IsNaN(g.TargetReduction) {
		return 0, nil
	}
	p := g.TargetReduction / float64(v) * 100
	return math.Max(0, math.Min(p, 100)), nil
}

// DaysRemaining returns the whole days left until the target date, rounded
// up. Overdue goals return a negative count.
func DaysRemaining(g models.PersonalGoal, now time.Time) (int, error) {
	target, err := time.ParseInLocation(constants.DateFormat, g.TargetDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid target date %q: %w", g.TargetDate, err)
	}
	days := target.Sub(now).Hours() / 24
	return int(math.Ceil(days)), nil
}

// SplitByStatus separates goals into active and completed, keeping order.
func SplitByStatus(goals []models.PersonalGoal) (active, completed []models.PersonalGoal) {
	for _, g := range goals {
		if g.Completed {
			completed = append(completed, g)
		} else {
			active = append(active, g)
		}
	}
	return active, completed
}

// Add returns a new collection with g first.
func Add(goals []models.PersonalGoal, g models.PersonalGoal) []models.PersonalGoal {
	out := make([]models.PersonalGoal, 0, len(goals)+1)
	out = append(out, g)
	return append(out, goals...)
}

// Update replaces the goal with the same id.
func Update(goals []models.PersonalGoal, g models.PersonalGoal) ([]models.PersonalGoal, error) {
	i := indexOf(goals, g.ID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGoalNotFound, g.ID)
	}
	out := clone(goals)
	out[i] = g
	return out, nil
}

// Remove drops the goal with the given id.
func Remove(goals []models.PersonalGoal, id string) ([]models.PersonalGoal, error) {
	i := indexOf(goals, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	out := make([]models.PersonalGoal, 0, len(goals)-1)
	out = append(out, goals[:i]...)
	return append(out, goals[i+1:]...), nil
}

// ToggleCompletion flips the completed flag of the goal with the given id.
func ToggleCompletion(goals []models.PersonalGoal, id string) ([]models.PersonalGoal, error) {
	i := indexOf(goals, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	out := clone(goals)
	out[i].Completed = !out[i].Completed
	return out, nil
}

// Find returns the goal with the given id. A unique id prefix of at least
// four characters also matches.
func Find(goals []models.PersonalGoal, id string) (models.PersonalGoal, error) {
	if i := indexOf(goals, id); i >= 0 {
		return goals[i], nil
	}
	if len(id) >= 4 {
		match := -1
		for i, g := range goals {
			if len(g.ID) >= len(id) && g.ID[:len(id)] == id {
				if match >= 0 {
					return models.PersonalGoal{}, fmt.Errorf("goal id prefix %q is ambiguous", id)
				}
				match = i
			}
		}
		if match >= 0 {
			return goals[match], nil
		}
	}
	return models.PersonalGoal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
}

func indexOf(goals []models.PersonalGoal, id string) int {
	for i, g := range goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func clone(goals []models.PersonalGoal) []models.PersonalGoal {
	out := make([]models.PersonalGoal, len(goals))
	copy(out, goals)
	return out
}
