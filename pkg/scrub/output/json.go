package output

import (
	"bytes"
	"encoding/json"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Root     string      `json:"root"`
	DryRun   bool        `json:"dry_run"`
	Items    []jsonItem  `json:"items"`
	Summary  jsonSummary `json:"summary"`
	Warnings []string    `json:"warnings,omitempty"`
}

// jsonItem represents one deleted entry in JSON output.
type jsonItem struct {
	Path      string `json:"path"`
	Kind      string `json:"kind"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"size_human"`
}

// jsonSummary represents the run summary in JSON output.
type jsonSummary struct {
	FilesDeleted    int64  `json:"files_deleted"`
	DirsDeleted     int64  `json:"dirs_deleted"`
	BytesReclaimed  int64  `json:"bytes_reclaimed"`
	SpaceFreedHuman string `json:"space_freed_human"`
	ElapsedMS       int64  `json:"elapsed_ms"`
}

// JSONFormatter formats output as indented JSON for machine consumption.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Report) error {
	out := jsonOutput{
		Root:     r.Root,
		DryRun:   r.DryRun,
		Items:    make([]jsonItem, 0, len(r.Items)),
		Warnings: r.Warnings,
		Summary: jsonSummary{
			FilesDeleted:    r.Summary.FilesDeleted,
			DirsDeleted:     r.Summary.DirsDeleted,
			BytesReclaimed:  r.Summary.BytesReclaimed,
			SpaceFreedHuman: r.Summary.SpaceFreedHuman,
			ElapsedMS:       r.Summary.Elapsed.Milliseconds(),
		},
	}

	for i := range r.Items {
		item := &r.Items[i]
		out.Items = append(out.Items, jsonItem{
			Path:      item.Path,
			Kind:      item.Kind(),
			Size:      item.Size,
			SizeHuman: item.SizeHuman,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
