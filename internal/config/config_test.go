package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/models"
)

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".duty")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}

		expected := &models.Config{PeriodStart: "2026-11-02", PeriodDays: 28}
		data, err := json.MarshalIndent(expected, "", "  ")
		if err != nil {
			t.Fatalf("setup: marshal failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if *cfg != *expected {
			t.Errorf("Load: got %+v, want %+v", cfg, expected)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.PeriodStart != "" || cfg.PeriodDays != 0 {
			t.Errorf("Expected zero config, got %+v", cfg)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".duty")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("{not json"), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		if _, err := Load(dir); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})
}

func TestSetAndGetPeriod(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local)

	p, err := GetPeriod(dir, now)
	if err != nil {
		t.Fatalf("GetPeriod failed: %v", err)
	}
	if p.Length != calendar.DefaultPeriodDays {
		t.Errorf("default length: got %d", p.Length)
	}

	want, _ := calendar.NewPeriod(time.Date(2026, 11, 2, 0, 0, 0, 0, time.Local), 21)
	if err := SetPeriod(dir, want); err != nil {
		t.Fatalf("SetPeriod failed: %v", err)
	}

	got, err := GetPeriod(dir, now)
	if err != nil {
		t.Fatalf("GetPeriod failed: %v", err)
	}
	if got.StartString() != "2026-11-02" || got.Length != 21 {
		t.Errorf("GetPeriod: got %s", got)
	}
}
