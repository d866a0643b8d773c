package backups

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/ecochallenge/internal/backup"
	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}
}

func TestBackupCreateListRestore(t *testing.T) {
	ctx := setupTestDB(t)
	if err := ctx.Store.SaveCompletedChallenges([]string{"food-1"}); err != nil {
		t.Fatal(err)
	}

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	latest, ok, err := mgr.Latest()
	if err != nil || !ok {
		t.Fatalf("expected a backup, got ok=%v err=%v", ok, err)
	}

	if err := ctx.Store.SaveCompletedChallenges([]string{"food-1", "energy-1"}); err != nil {
		t.Fatal(err)
	}

	cmd := &BackupRestoreCmd{BackupFile: filepath.Base(latest.Path), Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("backup restore failed: %v", err)
	}

	ids, err := ctx.Store.LoadCompletedChallenges()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Errorf("expected restored state with 1 challenge, got %v", ids)
	}
}

func TestBackupRestore_NotFound(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&BackupRestoreCmd{BackupFile: "missing.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}

func TestBackup_RequiresSQLite(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "s.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	ctx := &cli.Context{Store: store}
	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, errNotSQLite) {
		t.Errorf("expected errNotSQLite, got %v", err)
	}
}
