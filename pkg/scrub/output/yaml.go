package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Root     string      `yaml:"root"`
	DryRun   bool        `yaml:"dry_run"`
	Items    []yamlItem  `yaml:"items"`
	Summary  yamlSummary `yaml:"summary"`
	Warnings []string    `yaml:"warnings,omitempty"`
}

// yamlItem represents one deleted entry in YAML output.
type yamlItem struct {
	Path      string `yaml:"path"`
	Kind      string `yaml:"kind"`
	Size      int64  `yaml:"size"`
	SizeHuman string `yaml:"size_human"`
}

// yamlSummary represents the run summary in YAML output.
type yamlSummary struct {
	FilesDeleted    int64  `yaml:"files_deleted"`
	DirsDeleted     int64  `yaml:"dirs_deleted"`
	BytesReclaimed  int64  `yaml:"bytes_reclaimed"`
	SpaceFreedHuman string `yaml:"space_freed_human"`
	ElapsedMS       int64  `yaml:"elapsed_ms"`
}

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Report) error {
	out := yamlOutput{
		Root:     r.Root,
		DryRun:   r.DryRun,
		Items:    make([]yamlItem, 0, len(r.Items)),
		Warnings: r.Warnings,
		Summary: yamlSummary{
			FilesDeleted:    r.Summary.FilesDeleted,
			DirsDeleted:     r.Summary.DirsDeleted,
			BytesReclaimed:  r.Summary.BytesReclaimed,
			SpaceFreedHuman: r.Summary.SpaceFreedHuman,
			ElapsedMS:       r.Summary.Elapsed.Milliseconds(),
		},
	}

	for i := range r.Items {
		item := &r.Items[i]
		out.Items = append(out.Items, yamlItem{
			Path:      item.Path,
			Kind:      item.Kind(),
			Size:      item.Size,
			SizeHuman: item.SizeHuman,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
