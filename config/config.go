package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

const devSessionSecret = "dev-session-secret-change-me"

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	// Record store
	StoreDriver  string
	DBUrl        string
	FixturesDir  string // empty uses the embedded fixtures
	StoreLatency time.Duration

	// Job board behaviour
	JobsPageSize         int
	DefaultCandidateID   int64
	DefaultResumeVersion string

	// Redis (optional, enables the shared vote guard and rate limiter)
	RedisURL      string
	RedisPassword string

	// Viewer sessions
	SessionSecret string
	SessionTTL    time.Duration

	CORSAllowedOrigins []string

	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int

	// Warnings collected while loading, logged once the logger is up
	Warnings []string
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreDriver:  strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		DBUrl:        getEnv("DATABASE_URL", ""),
		FixturesDir:  getEnv("FIXTURES_DIR", ""),
		StoreLatency: getEnvDuration("STORE_LATENCY_MS", 300*time.Millisecond, time.Millisecond),

		JobsPageSize:         getEnvInt("JOBS_PAGE_SIZE", 10),
		DefaultCandidateID:   int64(getEnvInt("DEFAULT_CANDIDATE_ID", 1)),
		DefaultResumeVersion: getEnv("DEFAULT_RESUME_VERSION", "v1"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getEnvDuration("SESSION_TTL_HOURS", 24*time.Hour, time.Hour),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.DBUrl == "" {
			return errors.New("config: STORE_DRIVER=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.JobsPageSize < 1 {
		c.Warnings = append(c.Warnings, "JOBS_PAGE_SIZE must be positive, using 10")
		c.JobsPageSize = 10
	}
	if c.StoreLatency < 0 {
		c.StoreLatency = 0
	}
	if c.SessionSecret == "" {
		if c.GinMode == "release" {
			return errors.New("config: SESSION_SECRET is required in release mode")
		}
		c.Warnings = append(c.Warnings, "SESSION_SECRET not set, using an insecure development secret")
		c.SessionSecret = devSessionSecret
	}
	if c.RedisURL == "" {
		c.Warnings = append(c.Warnings, "REDIS_URL not configured, votes and rate limits are kept in memory")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration reads an integer count of unit
func getEnvDuration(key string, fallback, unit time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return time.Duration(n) * unit
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.TrimRight(part, "/"))
		}
	}
	return out
}
