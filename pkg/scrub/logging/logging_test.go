package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndGet(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "scrub.log")

	err := Init(Config{Level: "debug", Path: logPath})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	logger := Get("test")
	logger.Info("hello", "key", "value")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message, got: %s", data)
	}
	if !strings.Contains(string(data), "key=value") {
		t.Errorf("log file missing key/value, got: %s", data)
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(Config{Level: "loud", Path: filepath.Join(t.TempDir(), "x.log")})
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestGet_BeforeInitIsSilent(t *testing.T) {
	// Must not panic or write anywhere.
	logger := Get("early")
	logger.Error("discarded")
}

func TestGet_SameComponentSameLogger(t *testing.T) {
	a := Get("same")
	b := Get("same")
	if a != b {
		t.Error("Get should return the cached logger for a component")
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "scrub.log")

	if err := Init(Config{Level: "error", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	logger := Get("filtered")
	logger.Debug("below threshold")
	logger.Error("above threshold")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "below threshold") {
		t.Error("debug message should have been filtered")
	}
	if !strings.Contains(string(data), "above threshold") {
		t.Error("error message should have been written")
	}
}
