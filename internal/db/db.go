package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hamstech/backend/internal/models"
)

type Config struct {
	Driver          string // mysql, postgres or sqlite
	DatabaseURL     string // overrides the discrete fields below when set
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	PoolSize        int
	PoolRecycle     time.Duration
	ConnectTimeout  time.Duration
	ApplicationName string
}

// Open connects the process-wide pool. It is called once at startup and the
// returned handle is injected into the repositories; Close drains it.
func Open(cfg Config) (*gorm.DB, error) {
	// Set to 1 second to avoid logging queries during AutoMigrate schema introspection
	customLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gormCfg := &gorm.Config{
		Logger:         customLogger,
		PrepareStmt:    true,
		TranslateError: true,
	}

	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, gormCfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}
	// sqlite serialises writers; one connection also keeps in-memory databases shared.
	if cfg.Driver == "sqlite" {
		poolSize = 1
	}
	sqlDB.SetMaxOpenConns(poolSize)

	idleConns := poolSize / 2
	if idleConns < 1 {
		idleConns = 1
	}
	sqlDB.SetMaxIdleConns(idleConns)
	if cfg.PoolRecycle > 0 {
		sqlDB.SetConnMaxLifetime(cfg.PoolRecycle)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the users, hamsters, devices and sensor_readings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// Close drains the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// IsDuplicateKey reports whether err is a unique constraint violation on any
// of the supported drivers.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql", "":
		dsn, err := mysqlDSN(cfg)
		if err != nil {
			return nil, err
		}
		return gormmysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(postgresDSN(cfg)), nil
	case "sqlite":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = "file:" + cfg.Name + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func mysqlDSN(cfg Config) (string, error) {
	mc := mysql.NewConfig()
	if cfg.DatabaseURL != "" {
		parsed, err := mysql.ParseDSN(cfg.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		mc = parsed
	} else {
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
		mc.Collation = "utf8mb4_general_ci"
	}
	mc.ParseTime = true
	// Update and delete report matched rows, not changed rows, so a no-op
	// update of an existing row is not mistaken for a missing one.
	mc.ClientFoundRows = true
	if mc.Timeout == 0 && cfg.ConnectTimeout > 0 {
		mc.Timeout = cfg.ConnectTimeout
	}
	return mc.FormatDSN(), nil
}

func postgresDSN(cfg Config) string {
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		u := url.URL{
			Scheme: "postgresql",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   net.JoinHostPort(cfg.Host, cfg.Port),
			Path:   "/" + cfg.Name,
		}
		databaseURL = u.String()
	}

	params := []string{}
	if !containsParam(databaseURL, "timezone") {
		params = append(params, "timezone=UTC")
	}
	if !containsParam(databaseURL, "connect_timeout") {
		params = append(params, "connect_timeout=10")
	}
	if cfg.ApplicationName != "" && !containsParam(databaseURL, "application_name") {
		params = append(params, "application_name="+cfg.ApplicationName)
	}
	// For production, consider using 'require' or 'verify-full'
	if !containsParam(databaseURL, "sslmode") {
		params = append(params, "sslmode=disable")
	}
	if len(params) > 0 {
		separator := "?"
		if strings.Contains(databaseURL, "?") {
			separator = "&"
		}
		databaseURL = databaseURL + separator + strings.Join(params, "&")
	}
	return databaseURL
}

func containsParam(dsn string, param string) bool {
	return strings.Contains(dsn, param+"=")
}
