package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/ecochallenge/internal/constants"
)

// PersonalGoal is a user-declared reduction target. Progress is never stored;
// it is recomputed against the current breakdown.
type PersonalGoal struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description" yaml:"description"`
	Category        Category  `json:"category" yaml:"category"`
	TargetReduction float64   `json:"target_reduction" yaml:"target_reduction"` // kg CO2
	TargetDate      string    `json:"target_date" yaml:"target_date"`           // YYYY-MM-DD format
	Completed       bool      `json:"completed" yaml:"completed"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

func (g *PersonalGoal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title cannot be empty")
	}
	if !g.Category.IsGoalTarget() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, g.Category)
	}
	if !(g.TargetReduction > 0) || math.IsInf(g.TargetReduction, 0) {
		return fmt.Errorf("target reduction must be greater than 0, got %v", g.TargetReduction)
	}
	if _, err := time.Parse(constants.DateFormat, g.TargetDate); err != nil {
		return fmt.Errorf("invalid target date format (expected YYYY-MM-DD): %w", err)
	}
	return nil
}
