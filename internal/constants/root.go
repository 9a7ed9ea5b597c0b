package constants

const (
	AppName            = "tracker"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/tracker"
	DefaultConfigPath  = "~/.config/tracker/tracker.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Category sentinels
	UncategorizedTitle = "Uncategorized"
	PinnedTitle        = "Pinned"

	// Tracker defaults applied when persisted values are missing
	DefaultColorHex = "#34C759"
	DefaultEmoji    = "🙂"

	// MaxTrackerNameLen is enforced by the CLI before calling into the core
	MaxTrackerNameLen = 38

	// Service queue
	DefaultQueueSize      = 64
	DefaultSubscriberSize = 16
)
