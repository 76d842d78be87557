package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the fallback signing secret. It must be overridden in production.
const DefaultJWTSecret = "hamtech"

type AppConfig struct {
	Port string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string

	PoolSize       int
	PoolRecycle    time.Duration
	ConnectTimeout time.Duration

	JWTSecret string
	JWTExpiry time.Duration

	BcryptCost int

	LoginMaxAttempts int
	LoginLockout     time.Duration

	// RateLimitRPS is the per-IP request rate; 0 disables the limiter.
	RateLimitRPS int
	MaxUploadMB  int

	LogLevel  string
	LogFormat string

	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string
}

// Load reads the configuration from the environment, after merging an
// optional .env file from the working directory.
func Load() AppConfig {
	_ = godotenv.Load()

	cfg := AppConfig{}
	cfg.Port = getenv("PORT", "3000")

	cfg.DBDriver = strings.ToLower(getenv("DB_DRIVER", "mysql"))
	cfg.DBHost = getenv("DB_HOST", "localhost")
	cfg.DBPort = getenv("DB_PORT", defaultDBPort(cfg.DBDriver))
	cfg.DBUser = getenv("DB_USER", "root")
	cfg.DBPass = os.Getenv("DB_PASSWORD")
	cfg.DBName = getenv("DB_NAME", "hamstech")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	// Matches the connection limit the HamsTech deployment has always run with.
	cfg.PoolSize = getenvInt("DB_POOL_SIZE", 10)
	cfg.PoolRecycle = time.Duration(getenvInt("DB_POOL_RECYCLE_SECONDS", 300)) * time.Second
	cfg.ConnectTimeout = time.Duration(getenvInt("DB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second

	cfg.JWTSecret = getenv("JWT_SECRET", DefaultJWTSecret)
	cfg.JWTExpiry = time.Duration(getenvInt("JWT_EXPIRY_MINUTES", 60)) * time.Minute

	cfg.BcryptCost = getenvInt("BCRYPT_COST", 10)

	cfg.LoginMaxAttempts = getenvInt("LOGIN_MAX_ATTEMPTS", 3)
	cfg.LoginLockout = time.Duration(getenvInt("LOGIN_LOCKOUT_SECONDS", 300)) * time.Second

	cfg.RateLimitRPS = getenvInt("RATE_LIMIT_RPS", 20)
	cfg.MaxUploadMB = getenvInt("MAX_UPLOAD_MB", 10)

	cfg.LogLevel = getenv("LOG_LEVEL", "info")
	cfg.LogFormat = getenv("LOG_FORMAT", "json")

	cfg.InfluxURL = os.Getenv("INFLUX_URL")
	cfg.InfluxToken = os.Getenv("INFLUX_TOKEN")
	cfg.InfluxOrg = getenv("INFLUX_ORG", "hamstech")
	cfg.InfluxBucket = getenv("INFLUX_BUCKET", "sensors")
	return cfg
}

// Validate reports configuration values the server cannot start with.
func (c AppConfig) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("DB_POOL_SIZE must be positive, got %d", c.PoolSize)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.LoginMaxAttempts <= 0 {
		return fmt.Errorf("LOGIN_MAX_ATTEMPTS must be positive, got %d", c.LoginMaxAttempts)
	}
	return nil
}

// UsesDefaultSecret reports whether tokens are signed with the built-in secret.
func (c AppConfig) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// TelemetryEnabled reports whether sensor readings are mirrored to InfluxDB.
func (c AppConfig) TelemetryEnabled() bool {
	return c.InfluxURL != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n != 0 {
			return n
		}
	}
	return def
}

func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}
