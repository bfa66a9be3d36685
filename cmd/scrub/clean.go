package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jamesainslie/scrub/pkg/scrub/config"
	"github.com/jamesainslie/scrub/pkg/scrub/logging"
	"github.com/jamesainslie/scrub/pkg/scrub/manifest"
	"github.com/jamesainslie/scrub/pkg/scrub/output"
	"github.com/jamesainslie/scrub/pkg/scrub/rules"
	"github.com/jamesainslie/scrub/pkg/scrub/sweeper"
	"github.com/jamesainslie/scrub/pkg/scrub/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runClean is the root command handler: sweep the target tree and render
// the report.
func runClean(_ *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	// Determine the sweep root; default is the current working directory.
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	expanded, err := config.ExpandPath(root)
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}
	absRoot, err := filepath.Abs(expanded)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	// Build the rule set with any keep patterns.
	ruleSet, err := rules.Default().WithKeepGlobs(viper.GetStringSlice("keep"))
	if err != nil {
		return err
	}

	dryRun := viper.GetBool("dry_run")

	// Choose the output formatter up front so a bad -o fails fast.
	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutputFormat
	}
	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
	}

	// Setup context with cancellation for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		printInfo("\nInterrupted, stopping sweep...")
		cancel()
	}()

	if dryRun {
		printInfo("Dry run: scanning %s, nothing will be deleted", absRoot)
	} else {
		printInfo("Scrubbing %s...", absRoot)
	}

	s := sweeper.New(sweeper.Options{
		Root:     absRoot,
		DryRun:   dryRun,
		Rules:    ruleSet,
		OnAction: progressFunc(dryRun),
	})

	result, err := s.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			printInfo("Sweep interrupted; partial results follow")
		} else {
			// Root-not-found is the only fatal condition: no summary.
			return err
		}
	}

	report := buildReport(absRoot, dryRun, result)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	if !dryRun {
		recordRun(absRoot, result)
	}

	return nil
}

// progressFunc returns a callback that streams one line per removed entry
// as the sweep progresses. Verbose mode only; the formatted report is the
// primary output.
func progressFunc(dryRun bool) func(sweeper.Action) {
	if !getVerbose() || getQuiet() {
		return nil
	}

	verb := "deleted"
	if dryRun {
		verb = "would delete"
	}
	return func(a sweeper.Action) {
		kind := "file"
		if a.IsDir {
			kind = "directory"
		}
		fmt.Printf("  %s %s: %s (%s)\n", verb, kind, a.Path, types.FormatSize(a.Size))
	}
}

// initLogging initializes the logging system from flags and config.
func initLogging() error {
	level := viper.GetString("logging.level")
	if getVerbose() {
		level = "debug"
	}
	return logging.Init(logging.Config{
		Level:   level,
		Path:    viper.GetString("logging.path"),
		Console: getVerbose(),
	})
}

// buildReport converts a sweep result into an output report.
func buildReport(root string, dryRun bool, result *sweeper.Result) *output.Report {
	items := make([]output.Item, 0, len(result.Actions))
	for _, a := range result.Actions {
		items = append(items, output.Item{
			Path:      a.Path,
			IsDir:     a.IsDir,
			Size:      a.Size,
			SizeHuman: types.FormatSize(a.Size),
		})
	}

	var warnings []string
	for _, e := range result.Errors {
		warnings = append(warnings, fmt.Sprintf("%s: %s", e.Path, e.Error))
	}

	return &output.Report{
		Root:   root,
		DryRun: dryRun,
		Items:  items,
		Summary: output.Summary{
			FilesDeleted:    result.FilesDeleted,
			DirsDeleted:     result.DirsDeleted,
			BytesReclaimed:  result.BytesReclaimed,
			SpaceFreedHuman: types.FormatSize(result.BytesReclaimed),
			Elapsed:         result.Elapsed,
		},
		Warnings: warnings,
	}
}

// recordRun appends an executed run to the cleanup history. History
// failures are logged, never fatal.
func recordRun(root string, result *sweeper.Result) {
	logger := logging.Get("history")

	if !viper.GetBool("manifest.enabled") || len(result.Actions) == 0 {
		return
	}

	m, err := manifest.New(viper.GetString("manifest.path"))
	if err != nil {
		logger.Warn("history disabled", "error", err)
		return
	}
	if err := m.EnsureDir(); err != nil {
		logger.Warn("cannot create history directory", "error", err)
		return
	}

	records := make([]manifest.Record, 0, len(result.Actions))
	for _, a := range result.Actions {
		records = append(records, manifest.Record{Path: a.Path, IsDir: a.IsDir, Size: a.Size})
	}

	if _, err := m.LogRun(root, records); err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}

	if err := m.Cleanup(viper.GetInt("manifest.retention_days")); err != nil {
		logger.Warn("history cleanup failed", "error", err)
	}
}
