// Package logging provides component loggers for the scrub CLI.
//
// Log output goes to a file under the XDG state directory; an optional
// console echo on stderr is enabled for verbose runs. Before Init is
// called, all loggers are silent.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("sweeper")
//	logger.Info("sweep started", "root", root)
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// parseLevel parses a level string into a charmbracelet/log level.
func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the log level (debug, info, warn, error). Empty means info.
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	Path string

	// Console enables echoing log output to stderr.
	Console bool
}

// Logger wraps charmbracelet/log with component identification and
// optional console echo.
type Logger struct {
	file    *log.Logger
	console *log.Logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) { l.log(log.DebugLevel, msg, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) { l.log(log.InfoLevel, msg, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) { l.log(log.WarnLevel, msg, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) { l.log(log.ErrorLevel, msg, args...) }

func (l *Logger) log(level log.Level, msg string, args ...interface{}) {
	l.file.Log(level, msg, args...)
	if l.console != nil {
		l.console.Log(level, msg, args...)
	}
}

// With returns a new logger with additional context.
func (l *Logger) With(args ...interface{}) *Logger {
	out := &Logger{file: l.file.With(args...)}
	if l.console != nil {
		out.console = l.console.With(args...)
	}
	return out
}

// state holds the global logging state.
type state struct {
	mu          sync.Mutex
	initialized bool
	file        *os.File
	level       log.Level
	console     bool
	loggers     map[string]*Logger
}

var globalState = &state{
	loggers: make(map[string]*Logger),
}

// Init initializes the logging system. It must be called before loggers
// produce output; loggers obtained earlier are rebuilt against the new
// configuration.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if globalState.file != nil {
		_ = globalState.file.Close()
	}
	globalState.file = f
	globalState.level = level
	globalState.console = cfg.Console
	globalState.initialized = true

	// Rebuild in place so references obtained before Init pick up the
	// new configuration.
	for component, l := range globalState.loggers {
		*l = *newLogger(component)
	}

	return nil
}

// Get returns the logger for the given component, creating it if needed.
func Get(component string) *Logger {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}

	logger := newLogger(component)
	globalState.loggers[component] = logger
	return logger
}

// newLogger builds a logger for a component. Must be called with
// globalState.mu held.
func newLogger(component string) *Logger {
	if !globalState.initialized {
		return &Logger{
			file: log.NewWithOptions(io.Discard, log.Options{Prefix: component}),
		}
	}

	logger := &Logger{
		file: log.NewWithOptions(globalState.file, log.Options{
			Level:           globalState.level,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          component,
		}),
	}

	if globalState.console {
		logger.console = log.NewWithOptions(os.Stderr, log.Options{
			Level:           globalState.level,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          component,
		})
	}

	return logger
}

// Close flushes and closes the log file.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if !globalState.initialized {
		return nil
	}

	if globalState.file != nil {
		if err := globalState.file.Close(); err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
		globalState.file = nil
	}

	globalState.initialized = false
	for component, l := range globalState.loggers {
		*l = *newLogger(component)
	}
	return nil
}

// DefaultLogPath returns $XDG_STATE_HOME/scrub/scrub.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "scrub", "scrub.log")
}
