package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	ConfigPathEnv, "HTTP_ADDR", "DATABASE_PATH", "GEMINI_API_KEY", "GEMINI_MODEL", "JWT_SECRET",
	"TOKEN_TTL", "SCRAPE_TIMEOUT", "PROBLEM_CACHE_SIZE", "HISTORY_WINDOW", "WARMUP_CRON", "LOG_LEVEL",
}

// isolate unsets every recognised variable and moves into an empty working directory.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		HTTPAddr:         ":8000",
		DatabasePath:     "tutor.db",
		GeminiModel:      "gemini-2.5-flash-lite",
		JWTSecret:        "change-me-in-production",
		TokenTTL:         24 * time.Hour,
		ScrapeTimeout:    10 * time.Second,
		ProblemCacheSize: 100,
		HistoryWindow:    5,
		WarmupCron:       "0 1 * * *",
		LogLevel:         "info",
	}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("SCRAPE_TIMEOUT", "3s")
	t.Setenv("PROBLEM_CACHE_SIZE", "7")
	t.Setenv("WARMUP_CRON", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.Equal(t, 3*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, 7, cfg.ProblemCacheSize)
	assert.Empty(t, cfg.WarmupCron)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	isolate(t)
	t.Setenv("TOKEN_TTL", "forever")
	t.Setenv("HISTORY_WINDOW", "-2")
	t.Setenv("PROBLEM_CACHE_SIZE", "lots")
	t.Setenv("LOG_LEVEL", "  ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.HistoryWindow)
	assert.Equal(t, 100, cfg.ProblemCacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":7000\"\nhistory_window: 3\ngemini_model: gemini-test\n"), 0o600))
	t.Setenv(ConfigPathEnv, path)
	t.Setenv("GEMINI_MODEL", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, 3, cfg.HistoryWindow)
	assert.Equal(t, "from-env", cfg.GeminiModel)
}

func TestLoad_DefaultConfigFileInWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tutor.yaml"), []byte("database_path: /data/tutor.db\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/tutor.db", cfg.DatabasePath)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv(ConfigPathEnv, filepath.Join(dir, "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{GeminiAPIKey: "key", JWTSecret: "secret", WarmupCron: "0 1 * * *"}
	require.NoError(t, valid.Validate())

	disabled := valid
	disabled.WarmupCron = ""
	assert.NoError(t, disabled.Validate())

	missingKey := valid
	missingKey.GeminiAPIKey = ""
	assert.ErrorContains(t, missingKey.Validate(), "GEMINI_API_KEY")

	badCron := valid
	badCron.WarmupCron = "every day"
	assert.ErrorContains(t, badCron.Validate(), "WARMUP_CRON")

	noSecret := valid
	noSecret.JWTSecret = ""
	assert.ErrorContains(t, noSecret.Validate(), "JWT_SECRET")
}
