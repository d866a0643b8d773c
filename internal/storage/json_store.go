package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
)

// Store is the on-disk layout of a JSON backed provider.
type Store struct {
	Version             int                      `json:"version"`
	Settings            models.Settings          `json:"settings"`
	History             []models.HistoricalEntry `json:"history"`
	Goals               []models.PersonalGoal    `json:"goals"`
	CompletedChallenges []string                 `json:"completed_challenges"`
	CurrentFootprint    *models.CurrentFootprint `json:"current_footprint,omitempty"`
	Profile             *models.CommunityUser    `json:"profile,omitempty"`
}

const jsonStoreVersion = 1

// JSONStore keeps all state in a single file. It suits portable setups where
// a database file is unwanted.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:             jsonStoreVersion,
		Settings:            models.DefaultSettings(),
		History:             []models.HistoricalEntry{},
		Goals:               []models.PersonalGoal{},
		CompletedChallenges: []string{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage file: %w", err)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return fmt.Errorf("failed to parse storage file: %w", err)
	}
	if store.Version > jsonStoreVersion {
		return fmt.Errorf("storage file version (%d) is newer than supported version (%d) - please upgrade the application", store.Version, jsonStoreVersion)
	}

	models.ApplyDefaultSettings(&store.Settings)
	s.store = &store
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	// Write a sibling file then rename over the original
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) LoadHistory() ([]models.HistoricalEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.HistoricalEntry(nil), s.store.History...), nil
}

func (s *JSONStore) SaveHistory(history []models.HistoricalEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.History = append([]models.HistoricalEntry{}, history...)
	return s.save()
}

func (s *JSONStore) LoadGoals() ([]models.PersonalGoal, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.PersonalGoal(nil), s.store.Goals...), nil
}

func (s *JSONStore) SaveGoals(goals []models.PersonalGoal) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Goals = append([]models.PersonalGoal{}, goals...)
	return s.save()
}

func (s *JSONStore) LoadCompletedChallenges() ([]string, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.store.CompletedChallenges...), nil
}

func (s *JSONStore) SaveCompletedChallenges(ids []string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.CompletedChallenges = append([]string{}, ids...)
	return s.save()
}

func (s *JSONStore) GetCurrentFootprint() (models.CurrentFootprint, error) {
	if err := s.loaded(); err != nil {
		return models.CurrentFootprint{}, err
	}
	if s.store.CurrentFootprint == nil {
		return models.CurrentFootprint{}, fmt.Errorf("current footprint: %w", ErrNotFound)
	}
	return *s.store.CurrentFootprint, nil
}

func (s *JSONStore) SaveCurrentFootprint(fp models.CurrentFootprint) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.CurrentFootprint = &fp
	return s.save()
}

func (s *JSONStore) GetProfile() (models.CommunityUser, error) {
	if err := s.loaded(); err != nil {
		return models.CommunityUser{}, err
	}
	if s.store.Profile == nil {
		return models.CommunityUser{}, fmt.Errorf("profile: %w", ErrNotFound)
	}
	return *s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(p models.CommunityUser) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Profile = &p
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
