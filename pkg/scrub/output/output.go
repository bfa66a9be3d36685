// Package output provides formatters for displaying cleanup results in
// various output formats (pretty, plain, json, yaml).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, report); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Item is one deleted (or would-delete) entry prepared for display.
type Item struct {
	// Path is the absolute path of the entry.
	Path string `json:"path" yaml:"path"`

	// IsDir reports whether the entry was a directory.
	IsDir bool `json:"is_dir" yaml:"is_dir"`

	// Size is the entry size in bytes, computed before deletion.
	Size int64 `json:"size" yaml:"size"`

	// SizeHuman is the human-readable entry size (e.g. "1.5 MB").
	SizeHuman string `json:"size_human" yaml:"size_human"`
}

// Kind returns "directory" or "file" for display.
func (i *Item) Kind() string {
	if i.IsDir {
		return "directory"
	}
	return "file"
}

// Summary contains the aggregate counters of a cleanup run.
type Summary struct {
	// FilesDeleted is the number of files removed.
	FilesDeleted int64 `json:"files_deleted" yaml:"files_deleted"`

	// DirsDeleted is the number of directories removed as single units.
	DirsDeleted int64 `json:"dirs_deleted" yaml:"dirs_deleted"`

	// BytesReclaimed is the total space freed in bytes.
	BytesReclaimed int64 `json:"bytes_reclaimed" yaml:"bytes_reclaimed"`

	// SpaceFreedHuman is the human-readable total space freed.
	SpaceFreedHuman string `json:"space_freed_human" yaml:"space_freed_human"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Report contains the complete output data for formatting. Formatting is
// read-only: no formatter mutates the report.
type Report struct {
	// Root is the directory that was swept.
	Root string `json:"root" yaml:"root"`

	// DryRun indicates the run reported candidates without deleting.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Items lists every deleted or would-delete entry.
	Items []Item `json:"items" yaml:"items"`

	// Summary contains the aggregate counters.
	Summary Summary `json:"summary" yaml:"summary"`

	// Warnings contains recovered per-path error messages.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Clean reports whether the run found nothing to remove.
func (r *Report) Clean() bool {
	return r.Summary.FilesDeleted == 0 && r.Summary.DirsDeleted == 0
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Report) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
