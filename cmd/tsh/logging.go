package main

import (
	"io"
	"log/slog"
	"os"

	"tsh/internal/config"
)

// newLogger builds the diagnostic logger. Job notices never go through it.
// Without a log file or -v everything is discarded.
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, err
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	case verbose:
		w = stderr
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger.With("pid", os.Getpid()), closeFn, nil
}
