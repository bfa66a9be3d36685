// Package rules defines the classification rule set that decides which
// files and directories a sweep removes. The rule set is an immutable value
// constructed once at startup and injected into the sweeper; there is no
// mutable global state and no rule configuration file.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Rules is an immutable set of classification criteria.
//
// The extension and suffix lists deliberately overlap (".tmp" appears in
// both): extensions match the lowercased filepath extension exactly, while
// suffix patterns match the raw filename with a case-sensitive literal
// suffix comparison. The semantics differ (a bare "~" has no extension at
// all), so the two sets are kept independent rather than deduplicated.
type Rules struct {
	// Extensions are lowercase file extensions matched case-insensitively
	// against an entry's extension (e.g. ".tmp", ".bak").
	Extensions []string

	// DirectoryNames are lowercase directory basenames matched exactly and
	// case-insensitively (e.g. "build", "node_modules").
	DirectoryNames []string

	// SuffixPatterns are literal filename suffixes matched case-sensitively
	// against the whole filename (e.g. "~", ".swp").
	SuffixPatterns []string

	// ExactNames are lowercase filenames matched exactly and
	// case-insensitively (system artifacts like ".ds_store").
	ExactNames []string

	// CaseSensitiveNames are filenames matched exactly with case preserved.
	CaseSensitiveNames []string

	// keepGlobs are compiled user-supplied patterns; a candidate matching
	// any of them is never deleted.
	keepGlobs []glob.Glob
}

// Default returns the built-in rule set covering editor temp files, build
// output directories, bytecode/object artifacts, and OS metadata files.
// Source files (.cpp, .h, .hpp, .go, ...) and version control directories
// are never matched.
func Default() *Rules {
	return &Rules{
		Extensions: []string{
			".tmp", ".bak", ".swp", ".swo", ".log", ".cache", ".old",
			".orig", ".rej", ".patch", ".diff", ".pyc", ".pyo", ".class",
			".o", ".obj", ".exe.bak", ".dll.bak", ".so.bak",
		},
		DirectoryNames: []string{
			"build", "debug", "release", ".vs", ".idea",
			"cmake-build-debug", "cmake-build-release", "__pycache__",
			".pytest_cache", "node_modules", ".svn", ".hg", "bin", "obj",
			"out", "dist", "cmake-build-relwithdebinfo",
			"cmake-build-minsizerel",
		},
		SuffixPatterns: []string{"~", ".tmp", ".swp", ".swo"},
		ExactNames:     []string{".ds_store", "thumbs.db", "desktop.ini"},
		CaseSensitiveNames: []string{
			".gitignore.bak",
		},
	}
}

// WithKeepGlobs returns a copy of the rules with the given keep patterns
// compiled in. A path whose basename or full path matches any pattern is
// exempt from deletion. Invalid patterns are rejected.
func (r *Rules) WithKeepGlobs(patterns []string) (*Rules, error) {
	out := *r
	out.keepGlobs = make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, filepath.Separator)
		if err != nil {
			return nil, fmt.Errorf("invalid keep pattern %q: %w", p, err)
		}
		out.keepGlobs = append(out.keepGlobs, g)
	}
	return &out, nil
}

// MatchFile reports whether the entry named by path is an unwanted file.
// Matching is purely name-based: extension, whole-filename suffix, or exact
// filename. It never inspects content.
//
// A hidden file whose only dot is the leading one (".log", ".cache") has no
// extension; such names can only match through the suffix or exact-name
// rules.
func (r *Rules) MatchFile(path string) bool {
	filename := filepath.Base(path)

	if i := strings.LastIndexByte(filename, '.'); i > 0 {
		ext := strings.ToLower(filename[i:])
		for _, e := range r.Extensions {
			if ext == e {
				return true
			}
		}
	}

	for _, pattern := range r.SuffixPatterns {
		if strings.HasSuffix(filename, pattern) {
			return true
		}
	}

	lower := strings.ToLower(filename)
	for _, name := range r.ExactNames {
		if lower == name {
			return true
		}
	}

	for _, name := range r.CaseSensitiveNames {
		if filename == name {
			return true
		}
	}

	return false
}

// MatchDirectory reports whether path is an existing directory whose
// basename is an unwanted directory name. Non-directories always return
// false; the caller checks MatchDirectory before MatchFile, so an entry
// matching both rule sets is classified as a directory.
func (r *Rules) MatchDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}

	basename := strings.ToLower(filepath.Base(path))
	for _, name := range r.DirectoryNames {
		if basename == name {
			return true
		}
	}

	return false
}

// Kept reports whether path matches a keep pattern and must be preserved
// even when it classifies as unwanted.
func (r *Rules) Kept(path string) bool {
	if len(r.keepGlobs) == 0 {
		return false
	}
	base := filepath.Base(path)
	for _, g := range r.keepGlobs {
		if g.Match(base) || g.Match(path) {
			return true
		}
	}
	return false
}
