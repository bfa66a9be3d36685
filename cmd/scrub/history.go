package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jamesainslie/scrub/pkg/scrub/manifest"
	"github.com/jamesainslie/scrub/pkg/scrub/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View cleanup history",
	Long: `View the history of executed cleanup runs.

Each non-dry-run cleanup is recorded with the paths it deleted and the
space it freed. Dry runs are not recorded.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a specific cleanup run",
	Long:  `Display every path deleted by a specific cleanup run, by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 20, "maximum number of runs to list (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

// openManifest opens the cleanup history at the configured path.
func openManifest() (*manifest.Manifest, error) {
	return manifest.New(viper.GetString("manifest.path"))
}

// runHistory lists recorded cleanup runs.
func runHistory(cmd *cobra.Command, _ []string) error {
	m, err := openManifest()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := m.List(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		printInfo("No cleanup runs recorded")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tROOT\tFILES\tDIRS\tFREED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			e.Root,
			e.Summary.FilesDeleted,
			e.Summary.DirsDeleted,
			types.FormatSize(e.Summary.BytesReclaimed))
	}
	return tw.Flush()
}

// runHistoryShow prints every record of one cleanup run.
func runHistoryShow(_ *cobra.Command, args []string) error {
	m, err := openManifest()
	if err != nil {
		return err
	}

	entry, err := m.Get(args[0])
	if err != nil {
		return err
	}

	printInfo("Run %s at %s", entry.ID, entry.Timestamp.Local().Format("2006-01-02 15:04:05"))
	printInfo("Root: %s", entry.Root)
	printInfo("")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSIZE\tPATH")
	for _, r := range entry.Records {
		kind := "file"
		if r.IsDir {
			kind = "directory"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", kind, types.FormatSize(r.Size), r.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	printInfo("")
	printInfo("Files: %d  Directories: %d  Freed: %s",
		entry.Summary.FilesDeleted,
		entry.Summary.DirsDeleted,
		types.FormatSize(entry.Summary.BytesReclaimed))
	return nil
}
