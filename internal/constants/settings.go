package constants

const (
	// Config keys
	SettingDatabase  = "database"
	SettingTimezone  = "timezone"
	SettingDebug     = "debug"
	SettingLogDir    = "log_dir"
	SettingQueueSize = "queue_size"

	// EnvPrefix is prepended to config keys when read from the environment (TRACKER_DATABASE, ...)
	EnvPrefix = "TRACKER"

	DefaultTimezone = "Local" // Use system local timezone by default
)
