package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config contains runtime configuration values.
type Config struct {
	HTTPAddr         string
	DatabasePath     string
	GeminiAPIKey     string
	GeminiModel      string
	JWTSecret        string
	TokenTTL         time.Duration
	ScrapeTimeout    time.Duration
	ProblemCacheSize int
	HistoryWindow    int
	WarmupCron       string
	LogLevel         string
}

// ConfigPathEnv names the variable pointing at an optional YAML config file.
const ConfigPathEnv = "TUTOR_CONFIG"

const (
	defaultHTTPAddr         = ":8000"
	defaultDatabasePath     = "tutor.db"
	defaultGeminiModel      = "gemini-2.5-flash-lite"
	defaultJWTSecret        = "change-me-in-production"
	defaultTokenTTL         = 24 * time.Hour
	defaultScrapeTimeout    = 10 * time.Second
	defaultProblemCacheSize = 100
	defaultHistoryWindow    = 5
	defaultWarmupCron       = "0 1 * * *" // 01:00 every day
	defaultLogLevel         = "info"
	defaultConfigFile       = "tutor.yaml"
)

// Load builds a Config from defaults, an optional YAML file and environment variables,
// in increasing order of precedence. Malformed numbers and durations fall back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("HTTP_ADDR", defaultHTTPAddr)
	v.SetDefault("DATABASE_PATH", defaultDatabasePath)
	v.SetDefault("GEMINI_MODEL", defaultGeminiModel)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("WARMUP_CRON", defaultWarmupCron)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:         stringDefault(v, "HTTP_ADDR", defaultHTTPAddr),
		DatabasePath:     stringDefault(v, "DATABASE_PATH", defaultDatabasePath),
		GeminiAPIKey:     v.GetString("GEMINI_API_KEY"),
		GeminiModel:      stringDefault(v, "GEMINI_MODEL", defaultGeminiModel),
		JWTSecret:        v.GetString("JWT_SECRET"),
		TokenTTL:         parseDurationDefault(v, "TOKEN_TTL", defaultTokenTTL),
		ScrapeTimeout:    parseDurationDefault(v, "SCRAPE_TIMEOUT", defaultScrapeTimeout),
		ProblemCacheSize: parseIntDefault(v, "PROBLEM_CACHE_SIZE", defaultProblemCacheSize),
		HistoryWindow:    parseIntDefault(v, "HISTORY_WINDOW", defaultHistoryWindow),
		WarmupCron:       strings.TrimSpace(v.GetString("WARMUP_CRON")),
		LogLevel:         stringDefault(v, "LOG_LEVEL", defaultLogLevel),
	}

	return cfg, nil
}

// Validate reports settings the HTTP server cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if c.GeminiAPIKey == "" {
		errs = append(errs, fmt.Errorf("GEMINI_API_KEY is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("JWT_SECRET must not be empty"))
	}
	if c.WarmupCron != "" {
		if _, err := cron.ParseStandard(c.WarmupCron); err != nil {
			errs = append(errs, fmt.Errorf("invalid WARMUP_CRON %q: %w", c.WarmupCron, err))
		}
	}
	return errors.Join(errs...)
}

func readConfigFile(v *viper.Viper) error {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return nil
}

func stringDefault(v *viper.Viper, key, fallback string) string {
	if val := strings.TrimSpace(v.GetString(key)); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(v *viper.Viper, key string, fallback int) int {
	if val := v.GetString(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if val := v.GetString(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
