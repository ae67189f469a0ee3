// Package logger builds the process slog.Logger from config.Log settings.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rcliao/addressbook/internal/config"
)

// New returns a logger writing to stderr or cfg.File. Unknown levels or
// formats fall back to the defaults with a warning.
func New(cfg config.Log) *slog.Logger {
	var opts slog.HandlerOptions
	switch strings.ToLower(cfg.Level) {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "", "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		level := cfg.Level
		cfg.Level = ""
		l := New(cfg)
		l.Warn("could not parse logger level", "level", level)
		return l
	}

	var output io.Writer
	switch cfg.File {
	case "":
		output = os.Stderr
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			cfg.File = ""
			l := New(cfg)
			l.Warn("could not open logger output", "err", err)
			return l
		}
		output = f
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(output, &opts)
	case "", "text":
		handler = slog.NewTextHandler(output, &opts)
	default:
		cfg.Format = "text"
		l := New(cfg)
		l.Warn("could not parse logger format")
		return l
	}

	return slog.New(handler)
}
