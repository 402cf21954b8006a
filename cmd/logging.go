package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const logFile = ".duty/duty.log"

var logCloser io.Closer

// initLogging installs the default slog logger. Without debug, logs are
// discarded so nothing is written over the TUI.
func initLogging(dir string, debug bool) error {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	path := filepath.Join(dir, logFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	logCloser = f

	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	slog.Debug("logging started", "version", version)
	return nil
}

func closeLogging() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}
