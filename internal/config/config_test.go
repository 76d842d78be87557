package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DATABASE_URL", "DB_POOL_SIZE", "JWT_SECRET", "JWT_EXPIRY_MINUTES", "BCRYPT_COST",
		"LOGIN_MAX_ATTEMPTS", "LOGIN_LOCKOUT_SECONDS", "INFLUX_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "root", cfg.DBUser)
	assert.Equal(t, "", cfg.DBPass)
	assert.Equal(t, "hamstech", cfg.DBName)
	assert.Equal(t, 10, cfg.PoolSize)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.True(t, cfg.UsesDefaultSecret())
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 3, cfg.LoginMaxAttempts)
	assert.Equal(t, 300*time.Second, cfg.LoginLockout)
	assert.False(t, cfg.TelemetryEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_POOL_SIZE", "25")
	t.Setenv("JWT_SECRET", "a-much-longer-production-secret")
	t.Setenv("LOGIN_LOCKOUT_SECONDS", "60")
	t.Setenv("INFLUX_URL", "http://influx:8086")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 25, cfg.PoolSize)
	assert.False(t, cfg.UsesDefaultSecret())
	assert.Equal(t, time.Minute, cfg.LoginLockout)
	assert.True(t, cfg.TelemetryEnabled())
}

func TestGetenvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("DB_POOL_SIZE", "lots")
	assert.Equal(t, 10, getenvInt("DB_POOL_SIZE", 10))
}

func TestValidate(t *testing.T) {
	base := AppConfig{DBDriver: "sqlite", PoolSize: 1, JWTSecret: "x", LoginMaxAttempts: 3}
	require.NoError(t, base.Validate())

	bad := base
	bad.DBDriver = "oracle"
	assert.Error(t, bad.Validate())

	bad = base
	bad.PoolSize = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.JWTSecret = ""
	assert.Error(t, bad.Validate())

	bad = base
	bad.LoginMaxAttempts = -1
	assert.Error(t, bad.Validate())
}
