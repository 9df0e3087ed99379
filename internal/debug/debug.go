// Package debug provides optional file-based debug logging.
//
// When the CANDLES_DEBUG environment variable is set to a file path, debug
// records are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "CANDLES_DEBUG"

var (
	mu      sync.Mutex
	logger  *slog.Logger
	logFile *os.File
)

// Logger returns the package debug logger, opening the file named by
// CANDLES_DEBUG on first use. It never returns nil.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "debug: %v\n", err)
			}
		}
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
	}
	return logger
}

// Init directs debug logging to the given file path.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

func initLocked(path string) error {
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

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close closes the debug log file and reverts to discarding.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
