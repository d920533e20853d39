package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"dreamcatcher"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestDefaults(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://localhost:5111", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.AIStatusInterval)
	require.NotEmpty(t, cfg.DataDir)
}

func TestJsonFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://json:5111",
		"ai_status_interval": "45s"
	}`), 0o600))
	setArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "http://json:5111", cfg.APIBaseURL)
	require.Equal(t, 45*time.Second, cfg.AIStatusInterval)
	// fields missing from the file keep their defaults
	require.NotEmpty(t, cfg.DataDir)
}

func TestEnvOverridesJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "http://json:5111"}`), 0o600))
	setArgs(t, "-c", path)
	t.Setenv("DREAMCATCHER_API_URL", "http://env:5111")
	t.Setenv("DREAMCATCHER_AI_STATUS_INTERVAL", "1m")

	cfg := LoadConfig()
	require.Equal(t, "http://env:5111", cfg.APIBaseURL)
	require.Equal(t, time.Minute, cfg.AIStatusInterval)
}

func TestFlagsWinOverEverything(t *testing.T) {
	setArgs(t, "-a", "http://flag:5111", "-d", "/tmp/dc-data", "-i", "10")
	t.Setenv("DREAMCATCHER_API_URL", "http://env:5111")

	cfg := LoadConfig()
	require.Equal(t, "http://flag:5111", cfg.APIBaseURL)
	require.Equal(t, "/tmp/dc-data", cfg.DataDir)
	require.Equal(t, 10*time.Second, cfg.AIStatusInterval)
}

func TestMalformedEnvIntervalIsIgnored(t *testing.T) {
	setArgs(t)
	t.Setenv("DREAMCATCHER_AI_STATUS_INTERVAL", "soon")

	cfg := LoadConfig()
	require.Equal(t, 30*time.Second, cfg.AIStatusInterval)
}

func TestMalformedJsonFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	setArgs(t, "-c", path)

	require.Panics(t, func() { LoadConfig() })
}
