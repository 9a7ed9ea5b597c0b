package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/julianstephens/tracker/internal/constants"
)

// Config holds runtime settings. Values come from built-in defaults, an
// optional tracker.{toml,yaml,json} in the config dir, a local .env file and
// TRACKER_* environment variables, in increasing priority.
type Config struct {
	// Database is a SQLite/JSON file path or a PostgreSQL URL. Empty means
	// "use the keyring, then the default path".
	Database  string `mapstructure:"database"`
	Timezone  string `mapstructure:"timezone"`
	Debug     bool   `mapstructure:"debug"`
	LogDir    string `mapstructure:"log_dir"`
	QueueSize int    `mapstructure:"queue_size"`
}

// Load reads the configuration for configDir.
func Load(configDir string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	viper.SetDefault(constants.SettingDatabase, "")
	viper.SetDefault(constants.SettingTimezone, constants.DefaultTimezone)
	viper.SetDefault(constants.SettingDebug, false)
	viper.SetDefault(constants.SettingLogDir, "")
	viper.SetDefault(constants.SettingQueueSize, constants.DefaultQueueSize)

	viper.SetConfigName(constants.AppName)
	if configDir != "" {
		viper.AddConfigPath(ExpandPath(configDir))
	}
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configDir != "" {
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Database = ExpandPath(strings.TrimSpace(cfg.Database))
	cfg.LogDir = ExpandPath(strings.TrimSpace(cfg.LogDir))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	if c.QueueSize <= 0 {
		return fmt.Errorf("invalid %s %d: must be positive", constants.SettingQueueSize, c.QueueSize)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone. "Local" and the empty string map to time.Local.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, constants.DefaultTimezone) {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", constants.SettingTimezone, tz, err)
	}
	return loc, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
