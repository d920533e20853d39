// Package config assembles runtime settings for the Dreamcatcher CLI.
//
// Sources are overlaid in order, later ones winning:
// defaults → JSON file (-c/-config) → .env + environment → flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the backend root, without the /api suffix.
	APIBaseURL string
	// DataDir holds the credential store and master key file.
	DataDir string
	// AIStatusInterval is how often the REPL probes AI availability.
	AIStatusInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5111"
	c.AIStatusInterval = 30 * time.Second

	if dir, err := os.UserConfigDir(); err == nil {
		c.DataDir = filepath.Join(dir, "dreamcatcher")
	} else {
		c.DataDir = ".dreamcatcher"
	}
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
