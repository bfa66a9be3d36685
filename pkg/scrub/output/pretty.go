package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Report) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")
	w.WriteString(f.formatItems(r))
	w.WriteString(f.formatFooter(r))

	if len(r.Warnings) > 0 {
		w.WriteString("\n")
		w.WriteString(f.formatWarnings(r.Warnings))
	}

	return nil
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *Report) string {
	var lines []string

	title := TitleStyle.Render("Project Cleanup")
	if r.DryRun {
		title += "  " + WarningStyle.Bold(true).Render("DRY RUN: nothing will be deleted")
	}
	lines = append(lines, title)

	rootLabel := LabelStyle.Render("Root:")
	rootValue := ValueStyle.Render(r.Root)
	lines = append(lines, fmt.Sprintf("%s %s", rootLabel, rootValue))

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatItems builds the per-entry lines.
func (f *PrettyFormatter) formatItems(r *Report) string {
	if len(r.Items) == 0 {
		return SuccessStyle.Render("  Project directory is already clean") + "\n"
	}

	verb := "Deleted"
	if r.DryRun {
		verb = "Would delete"
	}

	var sb strings.Builder
	for i := range r.Items {
		item := &r.Items[i]
		line := fmt.Sprintf("  %s %s: %s (%s)",
			MutedStyle.Render(verb),
			LabelStyle.Render(item.Kind()),
			PathStyle.Render(item.Path),
			SizeStyle.Render(item.SizeHuman))
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatFooter builds the summary box.
func (f *PrettyFormatter) formatFooter(r *Report) string {
	var parts []string

	filesLabel := LabelStyle.Render("Files:")
	filesValue := ValueStyle.Render(humanize.Comma(r.Summary.FilesDeleted))
	parts = append(parts, fmt.Sprintf("%s %s", filesLabel, filesValue))

	dirsLabel := LabelStyle.Render("Directories:")
	dirsValue := ValueStyle.Render(humanize.Comma(r.Summary.DirsDeleted))
	parts = append(parts, fmt.Sprintf("%s %s", dirsLabel, dirsValue))

	freedLabel := LabelStyle.Render("Freed:")
	freedValue := SizeStyle.Render(r.Summary.SpaceFreedHuman)
	parts = append(parts, fmt.Sprintf("%s %s", freedLabel, freedValue))

	elapsedLabel := LabelStyle.Render("Elapsed:")
	elapsedValue := MutedStyle.Render(formatDuration(r.Summary.Elapsed))
	parts = append(parts, fmt.Sprintf("%s %s", elapsedLabel, elapsedValue))

	return FooterBox.Render(strings.Join(parts, "  "))
}

// formatWarnings builds a warning block.
func (f *PrettyFormatter) formatWarnings(warnings []string) string {
	var sb strings.Builder

	sb.WriteString(WarningStyle.Bold(true).Render("Warnings:"))
	sb.WriteString("\n")

	for _, warning := range warnings {
		sb.WriteString(WarningStyle.Render("  " + warning))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatDuration formats a duration in a human-friendly way.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
