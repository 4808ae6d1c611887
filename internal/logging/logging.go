// Package logging builds the charmbracelet/log logger shared by the CLI,
// the TUI and the engine. The terminal belongs to the game, so records go to
// a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options selects where and how much to log.
type Options struct {
	File  string // Log file path; empty discards all records
	Level string // debug, info, warn or error
}

// Logger is a logger bound to a session, plus the file it writes to.
type Logger struct {
	*log.Logger
	Session string
	closer  io.Closer
}

// New creates a logger for one session. Every record carries the session id.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		w, closer = f, f
	}

	session := uuid.NewString()
	base := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
		Level:           level,
	})

	return &Logger{
		Logger:  base.With("session", session),
		Session: session,
		closer:  closer,
	}, nil
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
