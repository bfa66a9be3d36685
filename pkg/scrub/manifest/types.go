// Package manifest records executed cleanup runs as JSON files so past
// deletions can be audited with the history command.
package manifest

import "time"

// Record represents one deleted entry within a cleanup run.
type Record struct {
	// Path is the absolute path that was deleted.
	Path string `json:"path"`

	// IsDir reports whether the entry was a directory.
	IsDir bool `json:"is_dir"`

	// Size is the entry's size in bytes at deletion time.
	Size int64 `json:"size"`
}

// Summary aggregates a run's counters.
type Summary struct {
	// FilesDeleted is the number of files removed.
	FilesDeleted int64 `json:"files_deleted"`

	// DirsDeleted is the number of directories removed.
	DirsDeleted int64 `json:"dirs_deleted"`

	// BytesReclaimed is the total space freed in bytes.
	BytesReclaimed int64 `json:"bytes_reclaimed"`
}

// Entry represents a single recorded cleanup run.
type Entry struct {
	// ID uniquely identifies the run (timestamp plus random suffix).
	ID string `json:"id"`

	// Timestamp is when the run completed, in UTC.
	Timestamp time.Time `json:"timestamp"`

	// Root is the directory that was swept.
	Root string `json:"root"`

	// Records lists every deleted entry.
	Records []Record `json:"records"`

	// Summary aggregates the run's counters.
	Summary Summary `json:"summary"`
}
