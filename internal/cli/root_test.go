package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/ecochallenge/internal/config"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/storage/postgres"
	"github.com/julianstephens/ecochallenge/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &Context{Store: store}
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		backend config.Backend
		check   func(storage.Provider) bool
	}{
		{config.BackendSQLite, func(p storage.Provider) bool { _, ok := p.(*sqlite.Store); return ok }},
		{config.BackendPostgres, func(p storage.Provider) bool { _, ok := p.(*postgres.Store); return ok }},
		{config.BackendJSON, func(p storage.Provider) bool { _, ok := p.(*storage.JSONStore); return ok }},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			p := NewStore(config.Target{Backend: tt.backend, Location: "/tmp/x"})
			if !tt.check(p) {
				t.Errorf("NewStore(%s) returned %T", tt.backend, p)
			}
		})
	}
}

func TestContext_NowUsesTimezone(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Config = &config.Config{Timezone: "UTC"}
	ctx.Clock = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)) }

	now := ctx.Now()
	if now.Location() != time.UTC || now.Hour() != 11 {
		t.Errorf("Now() = %v, want 11:00 UTC", now)
	}
}

func TestContext_CurrentBreakdown(t *testing.T) {
	ctx := setupTestContext(t)
	if _, ok, err := ctx.CurrentBreakdown(); err != nil || ok {
		t.Fatalf("expected no footprint, got ok=%v err=%v", ok, err)
	}

	fp := models.CurrentFootprint{Breakdown: models.FootprintBreakdown{Food: 10, Total: 10}, UpdatedAt: time.Now()}
	if err := ctx.Store.SaveCurrentFootprint(fp); err != nil {
		t.Fatal(err)
	}
	b, ok, err := ctx.CurrentBreakdown()
	if err != nil || !ok || b.Total != 10 {
		t.Errorf("CurrentBreakdown() = %+v, %v, %v", b, ok, err)
	}
}

func TestContext_ResolvePeriod(t *testing.T) {
	ctx := setupTestContext(t)
	p, err := ctx.ResolvePeriod("")
	if err != nil || p != models.Period6Months {
		t.Errorf("ResolvePeriod(\"\") = %q, %v", p, err)
	}
	p, err = ctx.ResolvePeriod("3m")
	if err != nil || p != models.Period3Months {
		t.Errorf("ResolvePeriod(\"3m\") = %q, %v", p, err)
	}
	if _, err := ctx.ResolvePeriod("2w"); err == nil {
		t.Error("expected error for unknown period")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		value, max, width int
		want              string
	}{
		{0, 100, 4, "░░░░"},
		{50, 100, 4, "██░░"},
		{200, 100, 4, "████"},
		{1, 1000, 4, "█░░░"},
	}
	for _, tt := range tests {
		if got := Bar(tt.value, tt.max, tt.width); got != tt.want {
			t.Errorf("Bar(%d, %d, %d) = %q, want %q", tt.value, tt.max, tt.width, got, tt.want)
		}
	}
}
