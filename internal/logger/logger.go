// Package logger sets up the app's structured log file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config controls where and how verbosely spiral logs.
type Config struct {
	Home  string // app home; logs land in <home>/logs
	Debug bool
}

// Setup opens the log file and returns a JSON slog.Logger plus a close
// function. On failure it returns a discarding logger so callers can log
// unconditionally.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	discard := slog.New(slog.NewJSONHandler(io.Discard, nil))

	dir := filepath.Join(cfg.Home, "logs")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return discard, func() error { return nil }, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "spiral.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() error { return nil }, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h), f.Close, nil
}
