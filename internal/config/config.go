package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/models"
)

const configFile = ".duty/config.json"

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// GetPeriod returns the configured scheduling period, defaulting relative to now
func GetPeriod(baseDir string, now time.Time) (calendar.Period, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return calendar.Period{}, err
	}
	return calendar.ParsePeriod(cfg.PeriodStart, cfg.PeriodDays, now)
}

// SetPeriod stores the scheduling period
func SetPeriod(baseDir string, p calendar.Period) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.PeriodStart = p.StartString()
	cfg.PeriodDays = p.Length
	return Save(baseDir, cfg)
}
