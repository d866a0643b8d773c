package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
)

func (s *Store) LoadHistory() ([]models.HistoricalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, transport, energy, food, consumption, total, notes
		FROM history
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.HistoricalEntry
	for rows.Next() {
		var e models.HistoricalEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Data.Transport, &e.Data.Energy,
			&e.Data.Food, &e.Data.Consumption, &e.Data.Total, &e.Notes); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

func (s *Store) SaveHistory(history []models.HistoricalEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO history (id, position, date, transport, energy, food, consumption, total, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range history {
		if _, err := stmt.Exec(e.ID, i, e.Date, e.Data.Transport, e.Data.Energy,
			e.Data.Food, e.Data.Consumption, e.Data.Total, e.Notes); err != nil {
			return fmt.Errorf("saving history entry %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
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

func (s *Store) LoadCompletedChallenges() ([]string, error) {
	rows, err := s.db.Query("SELECT challenge_id FROM completed_challenges ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) SaveCompletedChallenges(ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completed_challenges"); err != nil {
		return fmt.Errorf("clearing completed challenges: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO completed_challenges (challenge_id, position) VALUES ($1, $2)
		ON CONFLICT (challenge_id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(id, i); err != nil {
			return fmt.Errorf("saving completed challenge %s: %w", id, err)
		}
	}

	return tx.Commit()
}
