package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/config"
	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if ctx.Target.Backend == config.BackendPostgres {
		return errors.New("--force is only supported for file based storage")
	}

	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func (c *InitCmd) copyData(ctx *cli.Context) error {
	target, err := config.Resolve(c.Source, true, &config.Config{}, nil)
	if err != nil {
		return err
	}
	if target.Backend == config.BackendPostgres {
		if valid, err := postgres.ValidateConnString(target.Location); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
	}

	source := cli.NewStore(target)
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	return CopyStore(source, ctx.Store)
}

// CopyStore copies every collection from src into dst.
func CopyStore(src, dst storage.Provider) error {
	fmt.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	history, err := src.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to get history from source: %w", err)
	}
	if err := dst.SaveHistory(history); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	fmt.Printf("    Copied %d history entries\n", len(history))

	goals, err := src.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to get goals from source: %w", err)
	}
	if err := dst.SaveGoals(goals); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	fmt.Printf("    Copied %d goals\n", len(goals))

	completed, err := src.LoadCompletedChallenges()
	if err != nil {
		return fmt.Errorf("failed to get completed challenges from source: %w", err)
	}
	if err := dst.SaveCompletedChallenges(completed); err != nil {
		return fmt.Errorf("failed to save completed challenges: %w", err)
	}
	fmt.Printf("    Copied %d completed challenges\n", len(completed))

	fp, err := src.GetCurrentFootprint()
	switch {
	case err == nil:
		if err := dst.SaveCurrentFootprint(fp); err != nil {
			return fmt.Errorf("failed to save current footprint: %w", err)
		}
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to get current footprint from source: %w", err)
	}

	profile, err := src.GetProfile()
	switch {
	case err == nil:
		if err := dst.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to get profile from source: %w", err)
	}

	return nil
}
