package sqlite

import "fmt"

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

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO completed_challenges (challenge_id, position) VALUES (?, ?)")
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
