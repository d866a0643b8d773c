// Package config reads environment configuration, optionally preloaded from
// a .env file, and resolves which storage backend to open.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/julianstephens/ecochallenge/internal/constants"
)

// Config holds environment driven settings. Every variable carries the
// ECOCHALLENGE_ prefix.
type Config struct {
	ConfigPath   string `env:"CONFIG" envDefault:"~/.config/ecochallenge/ecochallenge.db"`
	Debug        bool   `env:"DEBUG"`
	DBConnection string `env:"DB_CONNECTION"`
	Timezone     string `env:"TIMEZONE"`
}

// Load preloads the given dotenv files (missing files are skipped) and
// parses the process environment. Variables already set win over dotenv.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return parse(env.Options{Prefix: constants.EnvPrefix})
}

// LoadFrom parses a fixed environment instead of the process one.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: constants.EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
