package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "ecochallenge"
	DisplayName        = "EcoChallenge"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/ecochallenge/ecochallenge.db"
	Version            = "v0.3.0"

	// EnvPrefix is prepended to every environment variable read by the config loader
	EnvPrefix = "ECOCHALLENGE_"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "ecochallenge-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "ecochallenge-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.ecochallenge"

	// Export format versions
	ExportVersion = 1
)

// Session States
const (
	StateDashboard SessionState = iota
	StateHistory
	StateGoals
	StateChallenges
	StateLearn
	StateCalculator
	StateAddGoal
	StateReading
	StateConfirmDelete
)
