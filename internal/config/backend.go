package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/ecochallenge/internal/keyring"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendJSON     Backend = "json"
)

// Target is the resolved storage location.
type Target struct {
	Backend  Backend
	Location string // file path or connection string
	Origin   string // where the location came from, for doctor output
}

// SecretLookup returns a stored connection string or keyring.ErrNotFound.
type SecretLookup func() (string, error)

func isConnString(v string) bool {
	return strings.HasPrefix(v, "postgres://") || strings.HasPrefix(v, "postgresql://")
}

// Resolve picks the storage target. An explicit --config wins, then
// ECOCHALLENGE_DB_CONNECTION, then a keyring entry, then the configured
// file path. Files ending in .json use the JSON backend.
func Resolve(flagValue string, explicit bool, cfg *Config, lookup SecretLookup) (Target, error) {
	if explicit {
		return fromValue(flagValue, "--config")
	}

	if cfg.DBConnection != "" {
		return Target{Backend: BackendPostgres, Location: cfg.DBConnection, Origin: "environment"}, nil
	}

	if lookup != nil {
		connStr, err := lookup()
		switch {
		case err == nil && connStr != "":
			return Target{Backend: BackendPostgres, Location: connStr, Origin: "keyring"}, nil
		case err != nil && !errors.Is(err, keyring.ErrNotFound) && !errors.Is(err, keyring.ErrKeyringUnavailable):
			return Target{}, fmt.Errorf("reading keyring: %w", err)
		}
	}

	path := flagValue
	if path == "" {
		path = cfg.ConfigPath
	}
	return fromValue(path, "default")
}

func fromValue(v, origin string) (Target, error) {
	if isConnString(v) {
		return Target{Backend: BackendPostgres, Location: v, Origin: origin}, nil
	}

	path, err := ExpandPath(v)
	if err != nil {
		return Target{}, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return Target{Backend: BackendJSON, Location: path, Origin: origin}, nil
	}
	return Target{Backend: BackendSQLite, Location: path, Origin: origin}, nil
}

// ConfigDir is the directory for logs and backups. Remote backends fall
// back to the default local config directory.
func (t Target) ConfigDir(cfg *Config) (string, error) {
	if t.Backend != BackendPostgres {
		return filepath.Dir(t.Location), nil
	}
	path, err := ExpandPath(cfg.ConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}
