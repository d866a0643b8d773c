package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ecochallenge/internal/advisor"
	"github.com/julianstephens/ecochallenge/internal/backup"
	"github.com/julianstephens/ecochallenge/internal/community"
	"github.com/julianstephens/ecochallenge/internal/config"
	"github.com/julianstephens/ecochallenge/internal/logger"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/reminder"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/storage/postgres"
	"github.com/julianstephens/ecochallenge/internal/storage/sqlite"
	"github.com/julianstephens/ecochallenge/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Config   *config.Config
	Target   config.Target
	Advisor  *advisor.Advisor
	Notifier reminder.Sender

	// Clock overrides time.Now in tests
	Clock func() time.Time
}

// NewStore builds the provider for a resolved target.
func NewStore(t config.Target) storage.Provider {
	switch t.Backend {
	case config.BackendPostgres:
		return postgres.New(t.Location)
	case config.BackendJSON:
		return storage.NewJSONStore(t.Location)
	default:
		return sqlite.NewStore(t.Location)
	}
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// GetAdvisor returns the configured advisor or the default rule set.
func (c *Context) GetAdvisor() *advisor.Advisor {
	if c.Advisor == nil {
		c.Advisor = advisor.New()
	}
	return c.Advisor
}

// Location is the timezone used for dates. ECOCHALLENGE_TIMEZONE overrides
// the stored setting.
func (c *Context) Location() *time.Location {
	tz := ""
	if c.Config != nil && c.Config.Timezone != "" {
		tz = c.Config.Timezone
	} else if settings, err := c.Store.GetSettings(); err == nil {
		tz = settings.Timezone
	}

	loc, err := utils.LoadLocation(tz)
	if err != nil {
		logger.Warn("Invalid timezone, using local time", "timezone", tz, "error", err)
		return time.Local
	}
	return loc
}

// Now returns the current time in the user's timezone.
func (c *Context) Now() time.Time {
	now := time.Now()
	if c.Clock != nil {
		now = c.Clock()
	}
	return now.In(c.Location())
}

// CurrentBreakdown returns the saved calculator result, or false when the
// calculator has not been run yet.
func (c *Context) CurrentBreakdown() (models.FootprintBreakdown, bool, error) {
	fp, err := c.Store.GetCurrentFootprint()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.FootprintBreakdown{}, false, nil
		}
		return models.FootprintBreakdown{}, false, fmt.Errorf("failed to load current footprint: %w", err)
	}
	return fp.Breakdown, true, nil
}

// ResolvePeriod parses a --period flag, falling back to the stored default.
func (c *Context) ResolvePeriod(flag string) (models.Period, error) {
	if strings.TrimSpace(flag) != "" {
		return models.ParsePeriod(flag)
	}
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.DefaultPeriod, nil
}

// ShortID returns the first 8 characters of an id for listings.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RefreshProfile recomputes the local community profile from completed
// challenges and history. It does nothing when no profile exists.
func (c *Context) RefreshProfile() error {
	profile, err := c.Store.GetProfile()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	completed, err := c.Store.LoadCompletedChallenges()
	if err != nil {
		return fmt.Errorf("failed to load completed challenges: %w", err)
	}
	history, err := c.Store.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	points := advisor.TotalPoints(c.GetAdvisor().Catalog(), advisor.CompletedSet(completed))
	reduction := 0
	if len(history) > 1 {
		reduction = history[len(history)-1].Data.Total - history[0].Data.Total
	}

	profile = community.SyncProfile(profile, points, reduction)
	if err := c.Store.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
