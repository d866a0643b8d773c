package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
)

func (s *Store) LoadGoals() ([]models.PersonalGoal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, category, target_reduction, target_date, completed, created_at
		FROM goals
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.PersonalGoal
	for rows.Next() {
		var g models.PersonalGoal
		var createdAt string
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.Category,
			&g.TargetReduction, &g.TargetDate, &g.Completed, &createdAt); err != nil {
			return nil, err
		}
		if g.CreatedAt, err = time.Parse(constants.TimestampFormat, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at of goal %s: %w", g.ID, err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) SaveGoals(goals []models.PersonalGoal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM goals"); err != nil {
		return fmt.Errorf("clearing goals: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO goals (id, position, title, description, category, target_reduction, target_date, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, g := range goals {
		if _, err := stmt.Exec(g.ID, i, g.Title, g.Description, string(g.Category),
			g.TargetReduction, g.TargetDate, g.Completed,
			g.CreatedAt.Format(constants.TimestampFormat)); err != nil {
			return fmt.Errorf("saving goal %s: %w", g.ID, err)
		}
	}

	return tx.Commit()
}
