package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/config"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{
		Store:  store,
		Config: &config.Config{Timezone: "UTC"},
		Clock:  func() time.Time { return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC) },
	}
}

func dates(t *testing.T, ctx *cli.Context) []string {
	t.Helper()
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, len(history))
	for i, e := range history {
		out[i] = e.Date
	}
	return out
}

func TestHistoryAddCmd_KeepsNewestFirst(t *testing.T) {
	ctx := setupTestDB(t)

	for _, d := range []string{"2024-03-01", "2024-05-01", "2024-01-01", "2024-04-01"} {
		cmd := &HistoryAddCmd{Date: d, Transport: 100, Energy: 200, Food: 300, Consumption: 400}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("history add %s failed: %v", d, err)
		}
	}

	got := dates(t, ctx)
	want := []string{"2024-05-01", "2024-04-01", "2024-03-01", "2024-01-01"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history order = %v, want %v", got, want)
		}
	}

	history, _ := ctx.Store.LoadHistory()
	if history[0].Data.Total != 1000 {
		t.Errorf("total = %d, want 1000", history[0].Data.Total)
	}
}

func TestHistoryAddCmd_DefaultsToToday(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&HistoryAddCmd{Food: 10, Note: " hi "}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	history, _ := ctx.Store.LoadHistory()
	if len(history) != 1 || history[0].Date != "2024-06-15" || history[0].Notes != "hi" {
		t.Errorf("unexpected entry: %+v", history)
	}
}

func TestHistoryAddCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  HistoryAddCmd
	}{
		{"bad date", HistoryAddCmd{Date: "15/06/2024"}},
		{"negative", HistoryAddCmd{Food: -1}},
		{"no current footprint", HistoryAddCmd{FromCurrent: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestDB(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHistoryAddCmd_FromCurrent(t *testing.T) {
	ctx := setupTestDB(t)
	b := models.FootprintBreakdown{Transport: 1, Energy: 2, Food: 3, Consumption: 4, Total: 10}
	if err := ctx.Store.SaveCurrentFootprint(models.CurrentFootprint{Breakdown: b, UpdatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := (&HistoryAddCmd{FromCurrent: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	history, _ := ctx.Store.LoadHistory()
	if len(history) != 1 || history[0].Data != b {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestHistoryReports(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&HistoryListCmd{}).Run(ctx); err != nil {
		t.Errorf("list on empty history failed: %v", err)
	}
	if err := (&HistoryTrendCmd{}).Run(ctx); err != nil {
		t.Errorf("trend on empty history failed: %v", err)
	}
	if err := (&HistoryAveragesCmd{Period: "all"}).Run(ctx); err != nil {
		t.Errorf("averages on empty history failed: %v", err)
	}

	for _, d := range []string{"2024-02-01", "2024-05-01"} {
		if err := (&HistoryAddCmd{Date: d, Food: 100}).Run(ctx); err != nil {
			t.Fatal(err)
		}
	}
	for _, cmd := range []interface{ Run(*cli.Context) error }{
		&HistoryListCmd{Period: "1y"},
		&HistoryTrendCmd{Period: "1y"},
		&HistoryAveragesCmd{},
	} {
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("%T failed: %v", cmd, err)
		}
	}
	if err := (&HistoryListCmd{Period: "2w"}).Run(ctx); err == nil {
		t.Error("expected error for invalid period")
	}
}

func TestHistoryDeleteCmd(t *testing.T) {
	ctx := setupTestDB(t)
	if err := ctx.Store.SaveHistory([]models.HistoricalEntry{
		{ID: "abc-1", Date: "2024-02-01"},
		{ID: "abd-2", Date: "2024-01-01"},
	}); err != nil {
		t.Fatal(err)
	}

	if err := (&HistoryDeleteCmd{ID: "ab"}).Run(ctx); err == nil {
		t.Error("expected ambiguous prefix error")
	}
	if err := (&HistoryDeleteCmd{ID: "zzz"}).Run(ctx); err == nil {
		t.Error("expected not found error")
	}
	if err := (&HistoryDeleteCmd{ID: "abd"}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := dates(t, ctx); len(got) != 1 || got[0] != "2024-02-01" {
		t.Errorf("remaining history = %v", got)
	}
}
