// Package logger provides structured logging for bucketlist.
// When verbose mode is enabled via the --verbose flag, records are printed
// to stderr. A log file can be attached for sessions where stderr is not
// usable, such as the full-screen TUI.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

var (
	mu      sync.RWMutex
	verbose bool
	console = true
	output  io.Writer = os.Stderr
	file    *os.File
	log     = build()
)

// SetVerbose enables or disables verbose logging to the console.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the console writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = build()
}

// SetConsole enables or disables the console handler regardless of
// verbosity. The TUI disables it while it owns the terminal.
func SetConsole(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	console = enabled
	log = build()
}

// SetFile attaches a JSON log file that receives every record at debug
// level. An empty path detaches the current file.
func SetFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		_ = file.Close()
		file = nil
	}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			log = build()
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			log = build()
			return err
		}
		file = f
	}

	log = build()
	return nil
}

// Close detaches and closes the log file, if any.
func Close() error {
	return SetFile("")
}

// build assembles the fan-out handler (caller must hold lock).
func build() *slog.Logger {
	var handlers []slog.Handler

	if console && verbose {
		handlers = append(handlers, slog.NewTextHandler(output, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

func emit(level slog.Level, msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Log(context.Background(), level, msg, args...)
}

// Debug logs a debug record with key-value attributes.
func Debug(msg string, args ...any) {
	emit(slog.LevelDebug, msg, args...)
}

// Section logs a section marker, grouping the records that follow.
func Section(name string) {
	emit(slog.LevelDebug, "=== "+name+" ===")
}

// Info logs an informational record.
func Info(msg string, args ...any) {
	emit(slog.LevelInfo, msg, args...)
}

// Warn logs a warning record.
func Warn(msg string, args ...any) {
	emit(slog.LevelWarn, msg, args...)
}

// Error logs an error record.
func Error(msg string, args ...any) {
	emit(slog.LevelError, msg, args...)
}
