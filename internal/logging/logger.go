// Package logging provides the structured logger shared by the server and
// the command line tools.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger. All methods are safe for concurrent use.
type Logger struct {
	*slog.Logger
}

// Options selects the logger output.
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // json or text
	Version string
	Output  io.Writer
}

// New creates a Logger with the service default fields attached.
func New(opts Options) *Logger {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "text":
		handler = slog.NewTextHandler(output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(output, handlerOpts)
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}
	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "hamstech"),
		slog.String("version", version),
	})

	return &Logger{Logger: slog.New(handler)}
}

// Default is used before configuration is available.
func Default() *Logger {
	return New(Options{Level: "info", Format: "json"})
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return New(Options{Output: io.Discard})
}

// With returns a Logger with additional default attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
