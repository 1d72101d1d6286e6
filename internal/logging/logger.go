// Package logging builds the charmbracelet loggers used as diagnostic sinks.
// Level, prefix and destination come from the environment.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerCloser wraps a logger and provides a Close method for cleanup
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the underlying writer if it's closeable
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// ParseLevel maps a level name to a log level, defaulting to info.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(name) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewLoggerWithWriter creates a new logger writing to w. An explicit level
// wins over EVMDIS_LOG_LEVEL.
func NewLoggerWithWriter(w io.Writer, level string) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	if level == "" {
		level = os.Getenv("EVMDIS_LOG_LEVEL")
	}
	lg.SetLevel(ParseLevel(level))

	prefix := os.Getenv("EVMDIS_LOG_PREFIX")
	if prefix == "" {
		prefix = "evmdis "
	}

	var closer io.Closer
	if c, ok := w.(io.Closer); ok && w != os.Stderr && w != os.Stdout {
		closer = c
	}

	return &LoggerCloser{
		Logger: lg.WithPrefix(prefix),
		closer: closer,
	}
}

// NewLogger creates a new logger based on environment variables
// EVMDIS_LOG_LEVEL: debug, info, warn, error (default: info)
// EVMDIS_LOG_PREFIX: prefix for log messages (default: "evmdis ")
// EVMDIS_LOG_TO_FILE: when set to "1", logs to a timestamped file instead of w
func NewLogger(w io.Writer, level string) *LoggerCloser {
	output := w

	if os.Getenv("EVMDIS_LOG_TO_FILE") == "1" {
		timestamp := time.Now().Format("20060102-150405")
		logFile := fmt.Sprintf("evmdis-%s-debug.log", timestamp)

		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			output = f
		}
		// If file creation fails, fall back to w
	}

	return NewLoggerWithWriter(output, level)
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return ParseLevel(os.Getenv("EVMDIS_LOG_LEVEL")) == log.DebugLevel
}
