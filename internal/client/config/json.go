package config

import (
	"encoding/json"
	"os"

	"github.com/dreamcatcher/dreamcatcher-go/internal/flagx"
	"github.com/dreamcatcher/dreamcatcher-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept either "30s" strings or integer nanoseconds (timex.Duration).
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	DataDir          string         `json:"data_dir"`
	AIStatusInterval timex.Duration `json:"ai_status_interval"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Absent flag means no JSON source. Fields missing from the file
// keep their current values. Panics on unreadable or malformed files:
// a config file that exists but cannot be used is a startup defect.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.AIStatusInterval.Duration > 0 {
		cfg.AIStatusInterval = jc.AIStatusInterval.Duration
	}
}
