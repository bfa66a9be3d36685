package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/scrub/pkg/scrub/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "scrub [path]",
		Short: "Remove unwanted files and build artifacts from a project tree",
		Long: `Scrub recursively sweeps a project directory and removes unwanted
files and directories: editor temp files (*.tmp, *.bak, *~, *.swp), build
output directories (build, debug, release, node_modules, __pycache__, ...),
and OS metadata files (.DS_Store, Thumbs.db, desktop.ini).

Source files (*.cpp, *.h, *.go, ...) and version control directories are
always preserved. With no path argument, scrub cleans the current working
directory.

Examples:
  scrub                      # Clean the current directory
  scrub --dry-run            # Show what would be deleted
  scrub ~/src/widget -o json # Clean a specific tree, JSON report
  scrub --keep "*.log" .     # Exempt matching entries from deletion
  scrub history              # View past cleanup runs`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClean,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/scrub/config.yaml)")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "report what would be deleted without deleting")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, yaml)")
	rootCmd.PersistentFlags().StringSliceP("keep", "k", nil, "glob patterns exempt from deletion (can be specified multiple times)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("keep", rootCmd.PersistentFlags().Lookup("keep"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "scrub"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "scrub"))
		}
	}

	viper.SetEnvPrefix("SCRUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("output", config.DefaultOutputFormat)
	viper.SetDefault("manifest.enabled", true)
	viper.SetDefault("manifest.path", config.DefaultManifestDir())
	viper.SetDefault("manifest.retention_days", config.DefaultRetentionDays)
	viper.SetDefault("logging.level", config.DefaultLogLevel)
	viper.SetDefault("logging.path", "")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}
