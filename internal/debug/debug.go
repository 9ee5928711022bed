package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "UI_DEBUG"

var (
	logger  *slog.Logger
	logFile io.Closer
	mu      sync.Mutex
	checked bool
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	checked = true
	return nil
}

// SetOutput routes debug records to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	checked = true
	if w == nil {
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether debug records are being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return currentLocked() != nil
}

// currentLocked returns the active logger, opening the UI_DEBUG file on
// first use. Caller must hold mu.
func currentLocked() *slog.Logger {
	if !checked {
		checked = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "debug: %v\n", err)
			}
		}
	}
	return logger
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	l := currentLocked()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Event writes a structured record with key/value attributes.
func Event(msg string, attrs ...any) {
	mu.Lock()
	defer mu.Unlock()

	l := currentLocked()
	if l == nil {
		return
	}
	l.Debug(msg, attrs...)
}
