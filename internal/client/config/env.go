package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// from the working directory first when one exists.
//
// Recognized variables:
//
//	DREAMCATCHER_API_URL            backend root URL
//	DREAMCATCHER_DATA_DIR           credential store directory
//	DREAMCATCHER_AI_STATUS_INTERVAL duration, e.g. "45s"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DREAMCATCHER_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DREAMCATCHER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("DREAMCATCHER_AI_STATUS_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.AIStatusInterval = d
		}
	}
}
