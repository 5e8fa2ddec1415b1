package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/ads")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "media", cfg.MediaRoot)
	assert.Equal(t, "/media", cfg.MediaURL)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 20.0, cfg.RateLimit.RPS)
	assert.Equal(t, 50, cfg.RateLimit.Burst)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/ads")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_URL", "file:ads.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("TIMEZONE", "Africa/Abidjan")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Africa/Abidjan", loc.String())
}

func TestLocationRejectsUnknownZone(t *testing.T) {
	_, err := Config{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
