// Package logging sets up zerolog loggers for the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "WORDRUSH_LOG_LEVEL"

// ParseLevel parses a level name, defaulting to info when empty.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// Console returns a human-readable logger on w, for commands that do not own the terminal.
func Console(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(out).Level(level)
}

// File is a JSON logger writing to a file.
type File struct {
	zerolog.Logger
	f *os.File
}

// OpenFile opens (or creates) the log file at path and appends JSON records to it.
func OpenFile(path string, level zerolog.Level) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &File{
		Logger: zerolog.New(f).Level(level).With().Timestamp().Logger(),
		f:      f,
	}, nil
}

// Close closes the log file.
func (l *File) Close() error {
	return l.f.Close()
}
