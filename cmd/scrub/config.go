package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/scrub/pkg/scrub/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage scrub configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/scrub/config.yaml (if set)
  2. ~/.config/scrub/config.yaml

Environment variables can override config file settings using the SCRUB_ prefix:
  SCRUB_OUTPUT=json
  SCRUB_MANIFEST_RETENTION_DAYS=7`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("output:               %s\n", cfg.Output)
	fmt.Printf("keep:                 %v\n", cfg.Keep)
	fmt.Printf("manifest.enabled:     %t\n", cfg.Manifest.Enabled)
	fmt.Printf("manifest.path:        %s\n", cfg.Manifest.Path)
	fmt.Printf("manifest.retention:   %d days\n", cfg.Manifest.RetentionDays)
	fmt.Printf("logging.level:        %s\n", cfg.Logging.Level)

	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	fmt.Printf("logging.path:         %s\n", logPath)

	return nil
}

// runConfigPath shows the config file path.
func runConfigPath(_ *cobra.Command, _ []string) error {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}

	fmt.Println(filepath.Join(dir, "scrub", "config.yaml"))
	return nil
}
