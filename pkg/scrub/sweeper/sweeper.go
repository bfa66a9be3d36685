// Package sweeper implements the recursive classification-and-deletion
// engine. It walks a directory tree top-down, batches entries matched by
// the classification rules, and deletes them (or reports them under
// dry-run) while recursing into directories that are not themselves
// deletion targets.
package sweeper

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/jamesainslie/scrub/pkg/scrub/logging"
	"github.com/jamesainslie/scrub/pkg/scrub/rules"
)

// logger is the package-level logger for sweep operations.
var logger = logging.Get("sweeper")

// Action describes one batched deletion target: the path, whether it is a
// directory, and its size computed before any mutation. Directory sizes are
// the best-effort recursive sum of regular file bytes beneath them.
type Action struct {
	// Path is the absolute path of the entry.
	Path string `json:"path"`

	// IsDir reports whether the entry is a directory (deleted recursively
	// and counted once).
	IsDir bool `json:"is_dir"`

	// Size is the entry's size in bytes, computed before deletion.
	Size int64 `json:"size"`
}

// SweepError pairs a path with the error encountered while listing or
// deleting it.
type SweepError struct {
	// Path is the file or directory path where the error occurred.
	Path string `json:"path"`

	// Error is the message describing what went wrong.
	Error string `json:"error"`
}

// Result contains the aggregated outcome of one sweep run. It is owned by
// a single Run invocation and never shared across concurrent runs.
type Result struct {
	// FilesDeleted is the number of files deleted (or that would be
	// deleted under dry-run).
	FilesDeleted int64 `json:"files_deleted"`

	// DirsDeleted is the number of directories deleted as single units.
	DirsDeleted int64 `json:"dirs_deleted"`

	// BytesReclaimed is the total size of all deleted entries. Contents of
	// a deleted directory are summed into its size, never counted again.
	BytesReclaimed int64 `json:"bytes_reclaimed"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// Actions lists every deleted (or would-delete) entry.
	Actions []Action `json:"actions"`

	// Errors contains per-path failures recovered during the run.
	Errors []SweepError `json:"errors,omitempty"`
}

// Options configures a Sweeper.
type Options struct {
	// Root is the directory the sweep starts from.
	Root string

	// DryRun suppresses filesystem mutation; classification, sizing, and
	// counting behave exactly as in execute mode.
	DryRun bool

	// Rules is the classification rule set. Nil means rules.Default().
	Rules *rules.Rules

	// OnAction, if set, is called for each entry as it is deleted (or
	// reported under dry-run). Failed deletions do not trigger it.
	OnAction func(Action)
}

// Sweeper walks a tree and removes entries matched by its rule set.
type Sweeper struct {
	opts   Options
	rules  *rules.Rules
	result *Result
}

// New creates a Sweeper with the given options.
func New(opts Options) *Sweeper {
	r := opts.Rules
	if r == nil {
		r = rules.Default()
	}
	return &Sweeper{opts: opts, rules: r}
}

// Run sweeps the tree rooted at Options.Root and returns the aggregated
// result. A missing or non-directory root is the only fatal condition; all
// other errors are recovered per-path and recorded in Result.Errors.
//
// Cancellation is checked between directory visits: a cancelled run returns
// the partial result together with ctx.Err().
func (s *Sweeper) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	s.result = &Result{}

	root, err := s.validateRoot()
	if err != nil {
		return nil, err
	}

	logger.Info("sweep started", "root", root, "dry_run", s.opts.DryRun)

	walkErr := s.cleanDirectory(ctx, root)

	s.result.Elapsed = time.Since(start)
	logger.Info("sweep finished",
		"files", s.result.FilesDeleted,
		"dirs", s.result.DirsDeleted,
		"bytes", s.result.BytesReclaimed,
		"errors", len(s.result.Errors),
		"elapsed", s.result.Elapsed)

	if walkErr != nil {
		return s.result, walkErr
	}
	return s.result, nil
}

// validateRoot resolves the root to an absolute path and verifies it is an
// existing directory.
func (s *Sweeper) validateRoot() (string, error) {
	root, err := filepath.Abs(s.opts.Root)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &fs.PathError{Op: "sweep", Path: root, Err: os.ErrInvalid}
	}

	return root, nil
}

// cleanDirectory applies the two-pass contract to one directory: enumerate
// and classify children (batching matches, recursing into unmatched
// directories), then size and act on the batch. An entry classified as
// unwanted is terminal: the sweep never descends into it.
//
// Directory classification is checked before file classification, so an
// entry matching both rule sets is handled as a directory. This tie-break
// is part of the contract.
func (s *Sweeper) cleanDirectory(ctx context.Context, dir string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Skip this directory but keep sweeping siblings.
		s.addError(dir, err)
		logger.Warn("cannot list directory", "path", dir, "error", err)
		return nil
	}

	// Enumeration pass: collect the deletion batch.
	var batch []Action
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		switch {
		case s.rules.MatchDirectory(path):
			if s.rules.Kept(path) {
				continue
			}
			batch = append(batch, Action{Path: path, IsDir: true})
		case s.rules.MatchFile(path):
			if s.rules.Kept(path) {
				continue
			}
			batch = append(batch, Action{Path: path, IsDir: entry.IsDir()})
		case entry.IsDir():
			if err := s.cleanDirectory(ctx, path); err != nil {
				return err
			}
		}
	}

	// Size pass: compute sizes before mutating anything.
	for i := range batch {
		batch[i].Size = entrySize(batch[i].Path, batch[i].IsDir)
	}

	// Action pass: each entry handled independently.
	for _, action := range batch {
		s.perform(action)
	}

	return nil
}

// perform deletes (or, under dry-run, reports) a single batched entry and
// updates the counters. A deletion failure is recorded and skipped; it
// never aborts the batch.
func (s *Sweeper) perform(action Action) {
	if !s.opts.DryRun {
		var err error
		if action.IsDir {
			err = os.RemoveAll(action.Path)
		} else {
			err = os.Remove(action.Path)
		}
		if err != nil {
			s.addError(action.Path, err)
			logger.Warn("delete failed", "path", action.Path, "error", err)
			return
		}
	}

	if action.IsDir {
		s.result.DirsDeleted++
	} else {
		s.result.FilesDeleted++
	}
	s.result.BytesReclaimed += action.Size
	s.result.Actions = append(s.result.Actions, action)

	logger.Debug("entry removed",
		"path", action.Path, "dir", action.IsDir, "size", action.Size,
		"dry_run", s.opts.DryRun)

	if s.opts.OnAction != nil {
		s.opts.OnAction(action)
	}
}

// addError records a recovered per-path error.
func (s *Sweeper) addError(path string, err error) {
	s.result.Errors = append(s.result.Errors, SweepError{
		Path:  path,
		Error: err.Error(),
	})
}

// entrySize returns the size of a batched entry: a regular file's byte
// length, or the recursive sum of regular file sizes beneath a directory.
// Size accounting is best-effort; any error is swallowed and contributes 0.
func entrySize(path string, isDir bool) int64 {
	if !isDir {
		info, err := os.Lstat(path)
		if err != nil || !info.Mode().IsRegular() {
			return 0
		}
		return info.Size()
	}
	return directorySize(path)
}

// directorySize sums regular file sizes beneath dir using fastwalk. Walk
// errors are ignored; accuracy is best-effort and never blocks deletion.
func directorySize(dir string) int64 {
	var total atomic.Int64

	conf := fastwalk.Config{Follow: false}
	_ = fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total.Add(info.Size())
			}
		}
		return nil
	})

	return total.Load()
}
