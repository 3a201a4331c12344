package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "impcton.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns the application logger and its file
// The terminal owns stdout, so logging goes to a file in debug mode and is
// discarded otherwise; the returned file is nil when nothing was opened
func setupLogging(debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate an oversized log from a previous run
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("impcton-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return logger, f
}
