package export

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/storage/sqlite"
)

func setupStore(t *testing.T) storage.Provider {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleBundle() Bundle {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return Bundle{
		Version:    1,
		ExportedAt: created,
		History: []models.HistoricalEntry{
			{ID: "h2", Date: "2024-02-01", Data: models.FootprintBreakdown{Transport: 100, Energy: 200, Food: 300, Consumption: 400, Total: 1000}},
			{ID: "h1", Date: "2024-01-01", Data: models.FootprintBreakdown{Transport: 200, Energy: 200, Food: 300, Consumption: 400, Total: 1100}, Notes: "first"},
		},
		Goals: []models.PersonalGoal{
			{ID: "g1", Title: "Eat less meat", Category: models.CategoryFood, TargetReduction: 150, TargetDate: "2024-12-31", CreatedAt: created},
		},
		CompletedChallenges: []string{"food-1"},
		Profile:             &models.CommunityUser{ID: "p1", Username: "fern", Level: "Beginner", JoinedAt: "2024-01-01"},
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.json", FormatJSON, false},
		{"out.YAML", FormatYAML, false},
		{"out.yml", FormatYAML, false},
		{"out.csv", "", true},
		{"out", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteReadFile(t *testing.T) {
	for _, name := range []string{"bundle.json", "bundle.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleBundle()
			if err := WriteFile(path, want); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if len(got.History) != 2 || got.History[1].Notes != "first" {
				t.Errorf("history not preserved: %+v", got.History)
			}
			if len(got.Goals) != 1 || !got.Goals[0].CreatedAt.Equal(want.Goals[0].CreatedAt) {
				t.Errorf("goals not preserved: %+v", got.Goals)
			}
			if got.Profile == nil || got.Profile.Username != "fern" {
				t.Errorf("profile not preserved: %+v", got.Profile)
			}
		})
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json"), FormatJSON); !errors.Is(err, ErrInvalidBundle) {
		t.Errorf("expected ErrInvalidBundle, got %v", err)
	}
}

func TestCollectApply(t *testing.T) {
	src := setupStore(t)
	if _, err := Apply(src, sampleBundle(), nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	b, err := Collect(src, now)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if b.Version != 1 || !b.ExportedAt.Equal(now) {
		t.Errorf("unexpected header: version=%d exported_at=%v", b.Version, b.ExportedAt)
	}
	if len(b.History) != 2 || b.History[0].ID != "h2" {
		t.Errorf("history order not preserved: %+v", b.History)
	}
	if len(b.CompletedChallenges) != 1 || b.Profile == nil {
		t.Errorf("unexpected bundle: %+v", b)
	}

	// import into a second store replaces its contents
	dst := setupStore(t)
	if err := dst.SaveHistory([]models.HistoricalEntry{{ID: "old", Date: "2023-01-01"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(dst, b, nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	history, _ := dst.LoadHistory()
	if len(history) != 2 || history[0].ID != "h2" {
		t.Errorf("history not replaced: %+v", history)
	}
}

func TestCollect_NoProfile(t *testing.T) {
	b, err := Collect(setupStore(t), time.Now())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if b.Profile != nil {
		t.Errorf("expected no profile, got %+v", b.Profile)
	}
}

func TestApply_RejectsInvalid(t *testing.T) {
	store := setupStore(t)

	bad := sampleBundle()
	bad.Goals[0].TargetReduction = -5
	if _, err := Apply(store, bad, nil); !errors.Is(err, ErrInvalidBundle) {
		t.Fatalf("expected ErrInvalidBundle, got %v", err)
	}
	goals, _ := store.LoadGoals()
	if len(goals) != 0 {
		t.Errorf("invalid bundle should not be applied, got %d goals", len(goals))
	}

	future := sampleBundle()
	future.Version = 99
	if _, err := Apply(store, future, nil); !errors.Is(err, ErrInvalidBundle) {
		t.Errorf("expected ErrInvalidBundle for future version, got %v", err)
	}
}

// failingGoalsStore fails SaveGoals and delegates everything else.
type failingGoalsStore struct {
	storage.Provider
}

func (s failingGoalsStore) SaveGoals([]models.PersonalGoal) error {
	return errors.New("disk full")
}

func TestApply_RollsBackOnPartialFailure(t *testing.T) {
	store := setupStore(t)
	old := []models.HistoricalEntry{{ID: "old", Date: "2023-01-01", Data: models.FootprintBreakdown{Total: 10, Food: 10}}}
	if err := store.SaveHistory(old); err != nil {
		t.Fatal(err)
	}

	_, err := Apply(failingGoalsStore{store}, sampleBundle(), nil)
	if err == nil || !strings.Contains(err.Error(), "failed to save goals") {
		t.Fatalf("expected goals save error, got %v", err)
	}

	history, err := store.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].ID != "old" {
		t.Errorf("history was not rolled back: %+v", history)
	}
	completed, _ := store.LoadCompletedChallenges()
	if len(completed) != 0 {
		t.Errorf("completed challenges written after failure: %v", completed)
	}
}
