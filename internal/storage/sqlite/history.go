package sqlite

import (
	"fmt"

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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
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
