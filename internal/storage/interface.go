package storage

import (
	"errors"

	"github.com/julianstephens/ecochallenge/internal/models"
)

var (
	// ErrNotFound is returned by single-record getters when nothing has
	// been saved yet.
	ErrNotFound = errors.New("not found")
)

// Provider persists whole collections. Callers load a collection, compute a
// replacement with the pure core packages and save it back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// History, newest first
	LoadHistory() ([]models.HistoricalEntry, error)
	SaveHistory([]models.HistoricalEntry) error

	// Goals, newest first
	LoadGoals() ([]models.PersonalGoal, error)
	SaveGoals([]models.PersonalGoal) error

	// Challenges
	LoadCompletedChallenges() ([]string, error)
	SaveCompletedChallenges([]string) error

	// Current footprint
	GetCurrentFootprint() (models.CurrentFootprint, error)
	SaveCurrentFootprint(models.CurrentFootprint) error

	// Community profile
	GetProfile() (models.CommunityUser, error)
	SaveProfile(models.CommunityUser) error

	// Utils
	GetConfigPath() string
}
