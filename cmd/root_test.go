package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() {
		debug = false
		rootCmd.SetArgs(nil)
		closeLogging()
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	// No database yet, so show fails
	rootCmd.SetArgs([]string{"--debug", "show", "missing"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected show to fail without a database")
	}

	if logCloser != nil {
		t.Error("log file left open after a failing command")
	}
	if _, err := os.Stat(filepath.Join(dir, logFile)); err != nil {
		t.Errorf("log file not written: %v", err)
	}
}
