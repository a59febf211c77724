package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
	assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3*time.Second, cfg.BidLockTimeout)
	assert.Equal(t, 4, cfg.AlertWorkers)
	assert.False(t, cfg.UptraceEnabled)
	assert.False(t, cfg.PyroscopeEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "stage")
	t.Setenv("APP_HTTP_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://auction.example.com, https://admin.example.com")
	t.Setenv("BID_LOCK_TIMEOUT", "500ms")
	t.Setenv("ALERT_WORKERS", "8")
	t.Setenv("CACHE_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvStage, cfg.AppEnv)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://auction.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.BidLockTimeout)
	assert.Equal(t, 8, cfg.AlertWorkers)
	assert.False(t, cfg.CacheEnabled)
}

func TestLoadInvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid APP_ENV")
}

func TestLoadProdRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")

	t.Setenv("AUTH_JWT_SECRET", "super-secret")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_ADMIN_PASSWORD")

	t.Setenv("AUTH_ADMIN_PASSWORD", "hunter2")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
}

func TestLoadUptraceRequiresDSN(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPTRACE_DSN")
}

func TestLoadInvalidDurations(t *testing.T) {
	t.Setenv("BID_LOCK_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BID_LOCK_TIMEOUT")
}
