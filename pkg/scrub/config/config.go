// Package config provides ambient configuration for the scrub CLI: output
// format, logging, keep patterns, and history retention. Classification
// rules are deliberately not configurable here; they are a fixed value
// owned by the rules package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Config represents the application configuration.
type Config struct {
	Output   string   `mapstructure:"output"`
	Keep     []string `mapstructure:"keep"`
	Manifest struct {
		Enabled       bool   `mapstructure:"enabled"`
		Path          string `mapstructure:"path"`
		RetentionDays int    `mapstructure:"retention_days"`
	} `mapstructure:"manifest"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/scrub/config.yaml
//   - $HOME/.config/scrub/config.yaml
//
// Environment variables are prefixed with SCRUB_ (e.g. SCRUB_OUTPUT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "scrub"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "scrub"))

	v.SetEnvPrefix("SCRUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", DefaultOutputFormat)
	v.SetDefault("keep", []string{})
	v.SetDefault("manifest.enabled", true)
	v.SetDefault("manifest.path", DefaultManifestDir())
	v.SetDefault("manifest.retention_days", DefaultRetentionDays)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // Empty means use the default state path.

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.HasPrefix(cfg.Manifest.Path, "~") {
		cfg.Manifest.Path = filepath.Join(homeDir, cfg.Manifest.Path[1:])
	}

	return &cfg, nil
}

// DataDir returns $XDG_DATA_HOME/scrub/ for history records.
func DataDir() string {
	return filepath.Join(xdg.DataHome, "scrub")
}

// StateDir returns $XDG_STATE_HOME/scrub/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "scrub")
}

// DefaultManifestDir returns the default cleanup history directory.
func DefaultManifestDir() string {
	return filepath.Join(DataDir(), "history")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "scrub.log")
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}
