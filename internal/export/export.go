// Package export moves user data in and out of a store as a single
// JSON or YAML document.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/logger"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/validation"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidBundle     = errors.New("invalid export bundle")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Bundle is the exported document.
type Bundle struct {
	Version             int                      `json:"version" yaml:"version"`
	ExportedAt          time.Time                `json:"exported_at" yaml:"exported_at"`
	History             []models.HistoricalEntry `json:"history" yaml:"history"`
	Goals               []models.PersonalGoal    `json:"goals" yaml:"goals"`
	CompletedChallenges []string                 `json:"completed_challenges" yaml:"completed_challenges"`
	Profile             *models.CommunityUser    `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Collect reads every exported collection from the store.
func Collect(store storage.Provider, now time.Time) (Bundle, error) {
	history, err := store.LoadHistory()
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to load history: %w", err)
	}
	goals, err := store.LoadGoals()
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to load goals: %w", err)
	}
	completed, err := store.LoadCompletedChallenges()
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to load completed challenges: %w", err)
	}

	b := Bundle{
		Version:             constants.ExportVersion,
		ExportedAt:          now.UTC().Truncate(time.Second),
		History:             history,
		Goals:               goals,
		CompletedChallenges: completed,
	}

	profile, err := store.GetProfile()
	switch {
	case err == nil:
		b.Profile = &profile
	case !errors.Is(err, storage.ErrNotFound):
		return Bundle{}, fmt.Errorf("failed to load profile: %w", err)
	}

	return b, nil
}

// Check validates a bundle before it replaces stored data. catalog may be
// nil to skip the challenge id check.
func Check(b Bundle, catalog []models.Challenge) (validation.Report, error) {
	if b.Version < 1 || b.Version > constants.ExportVersion {
		return validation.Report{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidBundle, b.Version)
	}

	report := validation.Validate(validation.Input{
		History:   b.History,
		Goals:     b.Goals,
		Completed: b.CompletedChallenges,
		Catalog:   catalog,
	})
	if report.HasErrors() {
		return report, fmt.Errorf("%w:\n%s", ErrInvalidBundle, report.FormatReport())
	}
	return report, nil
}

// Apply replaces the stored collections with the bundle's. The profile is
// only replaced when the bundle carries one. When a save fails the
// collections already written are put back from the store's prior state;
// an imported profile is kept if the store had none before.
func Apply(store storage.Provider, b Bundle, catalog []models.Challenge) (validation.Report, error) {
	report, err := Check(b, catalog)
	if err != nil {
		return report, err
	}

	prior, err := Collect(store, time.Time{})
	if err != nil {
		return report, fmt.Errorf("failed to read current data: %w", err)
	}

	type step struct {
		what string
		save func() error
		undo func() error
	}
	steps := []step{
		{
			what: "history",
			save: func() error { return store.SaveHistory(nonNil(b.History)) },
			undo: func() error { return store.SaveHistory(nonNil(prior.History)) },
		},
		{
			what: "goals",
			save: func() error { return store.SaveGoals(nonNil(b.Goals)) },
			undo: func() error { return store.SaveGoals(nonNil(prior.Goals)) },
		},
		{
			what: "completed challenges",
			save: func() error { return store.SaveCompletedChallenges(nonNil(b.CompletedChallenges)) },
			undo: func() error { return store.SaveCompletedChallenges(nonNil(prior.CompletedChallenges)) },
		},
	}
	if b.Profile != nil {
		steps = append(steps, step{
			what: "profile",
			save: func() error { return store.SaveProfile(*b.Profile) },
			undo: func() error {
				if prior.Profile == nil {
					return nil
				}
				return store.SaveProfile(*prior.Profile)
			},
		})
	}

	for i, s := range steps {
		if err := s.save(); err != nil {
			err = fmt.Errorf("failed to save %s: %w", s.what, err)
			for k := i - 1; k >= 0; k-- {
				if uerr := steps[k].undo(); uerr != nil {
					logger.Error("Failed to roll back import", "collection", steps[k].what, "error", uerr)
					return report, fmt.Errorf("%w (rollback of %s failed: %v)", err, steps[k].what, uerr)
				}
			}
			return report, err
		}
	}
	return report, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Marshal encodes a bundle.
func Marshal(b Bundle, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(b)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Unmarshal decodes a bundle.
func Unmarshal(data []byte, f Format) (Bundle, error) {
	var b Bundle
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &b)
	case FormatYAML:
		err = yaml.Unmarshal(data, &b)
	default:
		return Bundle{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	return b, nil
}

// WriteFile marshals the bundle in the format implied by path.
func WriteFile(path string, b Bundle) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(b, f)
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ReadFile loads a bundle in the format implied by path.
func ReadFile(path string) (Bundle, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return Bundle{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to read import: %w", err)
	}
	return Unmarshal(data, f)
}
