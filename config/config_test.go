package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("GIN_MODE", "debug")

	t.Run("Should reject an empty driver", func(t *testing.T) {
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unknown STORE_DRIVER")
	})

	t.Setenv("STORE_DRIVER", "Memory")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, devSessionSecret, cfg.SessionSecret)
	assert.NotEmpty(t, cfg.Warnings)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	t.Setenv("STORE_LATENCY_MS", "25")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("JOBS_PAGE_SIZE", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example/, ,https://b.example")
	t.Setenv("DEFAULT_CANDIDATE_ID", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, cfg.StoreLatency)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.JobsPageSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int64(7), cfg.DefaultCandidateID)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("Postgres needs a URL", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("Release mode needs a session secret", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("GIN_MODE", "release")
		t.Setenv("SESSION_SECRET", "")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "SESSION_SECRET")
	})

	t.Run("Unknown drivers are rejected", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "mongo")
	})
}
