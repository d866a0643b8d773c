package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage"
)

func (s *Store) GetProfile() (models.CommunityUser, error) {
	var p models.CommunityUser
	err := s.db.QueryRow(`
		SELECT id, username, level, total_points, carbon_reduction, joined_at, is_anonymous
		FROM profile LIMIT 1`).Scan(&p.ID, &p.Username, &p.Level, &p.TotalPoints,
		&p.CarbonReduction, &p.JoinedAt, &p.IsAnonymous)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CommunityUser{}, fmt.Errorf("profile: %w", storage.ErrNotFound)
	}
	return p, err
}

func (s *Store) SaveProfile(p models.CommunityUser) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM profile"); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO profile (id, username, level, total_points, carbon_reduction, joined_at, is_anonymous)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Username, p.Level, p.TotalPoints, p.CarbonReduction, p.JoinedAt, p.IsAnonymous); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	return tx.Commit()
}

func (s *Store) GetCurrentFootprint() (models.CurrentFootprint, error) {
	var fp models.CurrentFootprint
	var answers, updatedAt string
	err := s.db.QueryRow(`
		SELECT answers, transport, energy, food, consumption, total, updated_at
		FROM current_footprint WHERE id = 1`).Scan(&answers, &fp.Breakdown.Transport,
		&fp.Breakdown.Energy, &fp.Breakdown.Food, &fp.Breakdown.Consumption,
		&fp.Breakdown.Total, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CurrentFootprint{}, fmt.Errorf("current footprint: %w", storage.ErrNotFound)
	}
	if err != nil {
		return models.CurrentFootprint{}, err
	}

	if err := json.Unmarshal([]byte(answers), &fp.Answers); err != nil {
		return models.CurrentFootprint{}, fmt.Errorf("parsing stored answers: %w", err)
	}
	if fp.UpdatedAt, err = time.Parse(constants.TimestampFormat, updatedAt); err != nil {
		return models.CurrentFootprint{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return fp, nil
}

func (s *Store) SaveCurrentFootprint(fp models.CurrentFootprint) error {
	answers, err := json.Marshal(fp.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO current_footprint (id, answers, transport, energy, food, consumption, total, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		string(answers), fp.Breakdown.Transport, fp.Breakdown.Energy, fp.Breakdown.Food,
		fp.Breakdown.Consumption, fp.Breakdown.Total, fp.UpdatedAt.Format(constants.TimestampFormat))
	return err
}
