// Package applog is the editor's debug logger. The terminal is in raw mode
// while the editor runs, so logs only ever go to a file.
package applog

import (
	"io"
	"log/slog"
	"os"
)

// Open returns a logger appending to path, or a discarding logger when path
// is empty. The returned close func is always non-nil.
func Open(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard(), func() error { return nil }, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f.Close, nil
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
