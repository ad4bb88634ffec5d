// Package logging wires charmbracelet/log into codestat. It owns the
// process-wide default logger, level handling for the --debug flag, and a
// context carrier so runner workers log through whatever logger the command
// line configured.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // one process-wide logger, set up lazily
var (
	std     *log.Logger
	stdOnce sync.Once
)

// New returns a stderr logger at the named level. Timestamps and caller
// reporting stay off: scan results go to stdout and log lines must stay
// free of per-run noise.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// parseLevel maps a level name to a charmbracelet/log level. Unknown names
// fall back to info.
func parseLevel(name string) log.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// Default returns the process-wide logger, creating it at info level on
// first use.
func Default() *log.Logger {
	stdOnce.Do(func() {
		if std == nil {
			std = New("info")
		}
	})
	return std
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	stdOnce.Do(func() {})
	std = logger
}

// SetLevel adjusts the level of the process-wide logger in place.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
