package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/ecochallenge/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := userConfigDirFunc
	t.Cleanup(func() { userConfigDirFunc = old })
	userConfigDirFunc = func() (string, error) { return dir, nil }
	return dir
}

func stubProcess(t *testing.T, executable string) {
	t.Helper()
	old := findProcessFunc
	t.Cleanup(func() { findProcessFunc = old })
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: executable}, nil
	}
}

func TestGetTrayAppConfigDir(t *testing.T) {
	base := stubConfigDir(t)
	trayDir := filepath.Join(base, constants.TrayAppIdentifier)

	dir, err := GetTrayAppConfigDir()
	if err != nil || dir != trayDir {
		t.Fatalf("GetTrayAppConfigDir() = %q, %v; want %q", dir, err, trayDir)
	}

	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := "/custom/lock/dir"
	settings := fmt.Sprintf(`{"settings": {"lockfile_dir": %q}}`, custom)
	if err := os.WriteFile(filepath.Join(trayDir, "settings.json"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetTrayAppConfigDir()
	if err != nil || dir != custom {
		t.Errorf("GetTrayAppConfigDir() = %q, %v; want %q", dir, err, custom)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	lockfile := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	tests := []struct {
		name       string
		content    string
		executable string
		wantErr    string
	}{
		{"two part format", "8080|12345", "ecochallenge-tray", "malformed"},
		{"garbage", "invalid", "ecochallenge-tray", "malformed"},
		{"empty secret", "8080|12345|", "ecochallenge-tray", "secret"},
		{"empty port", "|12345|s3cret", "ecochallenge-tray", "port"},
		{"port out of range", "99999|12345|s3cret", "ecochallenge-tray", "range"},
		{"bad pid", "8080|abc|s3cret", "ecochallenge-tray", "process ID"},
		{"process gone", "8080|12345|s3cret", "", "not running"},
		{"wrong executable", "8080|12345|s3cret", "other-app", "is not"},
		{"valid", "8080|12345|s3cret\n", "ecochallenge-tray", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcess(t, tt.executable)
			if err := os.WriteFile(lockfile, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			port, secret, err := findAndValidateTrayProcess(lockfile)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if port != "8080" || secret != "s3cret" {
				t.Errorf("got port %q secret %q", port, secret)
			}
		})
	}
}

func TestFindAndValidateTrayProcess_MissingLockfile(t *testing.T) {
	_, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "absent.lock"))
	if !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("error = %v, want ErrTrayNotRunning", err)
	}
}

func newTrayServer(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32, *[]WebhookPayload) {
	t.Helper()
	var calls atomic.Int32
	var received []WebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if r.Header.Get(secretHeader) != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		if n <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var p WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		received = append(received, p)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, &calls, &received
}

func writeLockfile(t *testing.T, serverURL, secret string) {
	t.Helper()
	base := stubConfigDir(t)
	dir := filepath.Join(base, constants.TrayAppIdentifier)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	port := serverURL[strings.LastIndex(serverURL, ":")+1:]
	content := fmt.Sprintf("%s|4242|%s", port, secret)
	if err := os.WriteFile(filepath.Join(dir, constants.NotifierLockfileName), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	stubProcess(t, "ecochallenge-tray")
}

func TestNotify(t *testing.T) {
	server, _, received := newTrayServer(t, 0)
	writeLockfile(t, server.URL, "test-secret")

	if err := New().Notify(context.Background(), "Goal due", "Bike to work ends in 3 days"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if len(*received) != 1 {
		t.Fatalf("server received %d payloads, want 1", len(*received))
	}
	got := (*received)[0]
	if got.Title != "Goal due" || got.DurationMs != constants.NotificationDurationMs {
		t.Errorf("payload = %+v", got)
	}
}

func TestNotify_RetriesTransientFailures(t *testing.T) {
	server, calls, _ := newTrayServer(t, 2)
	writeLockfile(t, server.URL, "test-secret")

	n := New()
	n.retryDelay = 0
	if err := n.Notify(context.Background(), "", "hello"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("server saw %d calls, want 3", calls.Load())
	}
}

func TestNotify_GivesUp(t *testing.T) {
	server, calls, _ := newTrayServer(t, 0)
	writeLockfile(t, server.URL, "wrong-secret")

	n := New()
	n.retryDelay = 0
	err := n.Notify(context.Background(), "", "hello")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("error = %v, want status 401", err)
	}
	if calls.Load() != int32(constants.NotifyMaxRetries) {
		t.Errorf("server saw %d calls, want %d", calls.Load(), constants.NotifyMaxRetries)
	}
}
