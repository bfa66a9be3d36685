package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchFile(t *testing.T) {
	r := Default()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "tmp extension", path: "scratch.tmp", want: true},
		{name: "uppercase extension", path: "scratch.TMP", want: true},
		{name: "bak extension", path: "config.bak", want: true},
		{name: "python bytecode", path: "module.pyc", want: true},
		{name: "object file", path: "main.o", want: true},
		{name: "tilde suffix", path: "notes.txt~", want: true},
		{name: "bare tilde", path: "~", want: true},
		{name: "vim swap suffix", path: "file.swp", want: true},
		{name: "ds_store lowercase", path: ".ds_store", want: true},
		{name: "DS_Store mixed case", path: ".DS_Store", want: true},
		{name: "thumbs db", path: "Thumbs.db", want: true},
		{name: "desktop ini", path: "desktop.ini", want: true},
		{name: "gitignore backup exact", path: ".gitignore.bak", want: true},
		{name: "full path is ignored", path: filepath.Join("a", "b", "junk.tmp"), want: true},
		{name: "cpp source preserved", path: "main.cpp", want: false},
		{name: "header preserved", path: "widget.h", want: false},
		{name: "hpp preserved", path: "widget.hpp", want: false},
		{name: "go source preserved", path: "main.go", want: false},
		{name: "plain text preserved", path: "notes.txt", want: false},
		{name: "tmp in middle of name", path: "tmpfile.txt", want: false},
		{name: "dotfile log preserved", path: ".log", want: false},
		{name: "dotfile cache preserved", path: ".cache", want: false},
		{name: "dotfile bak preserved", path: ".bak", want: false},
		{name: "dotfile pyc preserved", path: ".pyc", want: false},
		{name: "dotfile tmp matches via suffix", path: ".tmp", want: true},
		{name: "dotfile swp matches via suffix", path: ".swp", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.MatchFile(tt.path)
			if got != tt.want {
				t.Errorf("MatchFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMatchFile_SuffixIsCaseSensitive(t *testing.T) {
	r := Default()

	// The suffix rule set matches the raw filename; ".SWP" only matches
	// through the case-insensitive extension rule, not the suffix rule.
	stripped := &Rules{SuffixPatterns: []string{".swp"}}
	if stripped.MatchFile("file.SWP") {
		t.Error("suffix patterns should be case-sensitive")
	}
	if !r.MatchFile("file.SWP") {
		t.Error("extension rule should still match .SWP case-insensitively")
	}
}

func TestMatchFile_LeadingDotIsNotAnExtension(t *testing.T) {
	r := Default()

	// Hidden files like ".log" have no extension; only the suffix and
	// exact-name rules may match them.
	for _, name := range []string{".log", ".cache", ".bak", ".pyc", ".old", ".orig"} {
		if r.MatchFile(name) {
			t.Errorf("MatchFile(%q) = true, hidden files without an extension must be preserved", name)
		}
	}

	// A second dot reinstates the extension semantics.
	if !r.MatchFile(".hidden.log") {
		t.Error("MatchFile(.hidden.log) = false, want extension match")
	}
}

func TestMatchDirectory(t *testing.T) {
	tmp := t.TempDir()
	r := Default()

	mkdir := func(name string) string {
		p := filepath.Join(tmp, name)
		if err := os.Mkdir(p, 0o755); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "build dir", path: mkdir("build"), want: true},
		{name: "uppercase build dir", path: mkdir("BUILD"), want: true},
		{name: "pycache", path: mkdir("__pycache__"), want: true},
		{name: "node_modules", path: mkdir("node_modules"), want: true},
		{name: "src preserved", path: mkdir("src"), want: false},
		{name: "git preserved", path: mkdir(".git"), want: false},
		{name: "missing path", path: filepath.Join(tmp, "nonexistent"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.MatchDirectory(tt.path)
			if got != tt.want {
				t.Errorf("MatchDirectory(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMatchDirectory_RegularFileNamedLikeDir(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "build")
	if err := os.WriteFile(p, []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}

	if Default().MatchDirectory(p) {
		t.Error("a regular file named like an unwanted directory must not match")
	}
}

func TestWithKeepGlobs(t *testing.T) {
	r, err := Default().WithKeepGlobs([]string{"*.log", "important.tmp"})
	if err != nil {
		t.Fatalf("WithKeepGlobs() error = %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "kept log", path: "server.log", want: true},
		{name: "kept log in subdir", path: filepath.Join("a", "server.log"), want: true},
		{name: "kept exact name", path: "important.tmp", want: true},
		{name: "not kept", path: "scratch.tmp", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Kept(tt.path); got != tt.want {
				t.Errorf("Kept(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWithKeepGlobs_Invalid(t *testing.T) {
	if _, err := Default().WithKeepGlobs([]string{"[unclosed"}); err == nil {
		t.Error("expected error for invalid glob pattern")
	}
}

func TestWithKeepGlobs_DoesNotMutateReceiver(t *testing.T) {
	base := Default()
	kept, err := base.WithKeepGlobs([]string{"*.log"})
	if err != nil {
		t.Fatal(err)
	}
	if base.Kept("a.log") {
		t.Error("base rules gained keep globs")
	}
	if !kept.Kept("a.log") {
		t.Error("derived rules missing keep globs")
	}
}
