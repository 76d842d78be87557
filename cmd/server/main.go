// @title HamsTech API
// @version 1.0
// @description Hamster husbandry IoT backend: accounts, hamsters, devices and sensor telemetry.

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hamstech/backend/docs" // Import generated docs
	"github.com/hamstech/backend/internal/config"
	"github.com/hamstech/backend/internal/db"
	"github.com/hamstech/backend/internal/logging"
	"github.com/hamstech/backend/internal/server"
	"github.com/hamstech/backend/internal/telemetry"
)

var version = "dev"

func main() {
	cfg := config.Load()
	log := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Version: version})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET not set, using the built-in default; set it before deploying")
	}

	gormDB, err := db.Open(db.Config{
		Driver:          cfg.DBDriver,
		DatabaseURL:     cfg.DatabaseURL,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		User:            cfg.DBUser,
		Password:        cfg.DBPass,
		Name:            cfg.DBName,
		PoolSize:        cfg.PoolSize,
		PoolRecycle:     cfg.PoolRecycle,
		ConnectTimeout:  cfg.ConnectTimeout,
		ApplicationName: "hamstech",
	})
	if err != nil {
		log.Error("db open error", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close(gormDB)

	if err := db.Migrate(gormDB); err != nil {
		log.Error("db migrate error", "error", err)
		os.Exit(1)
	}

	var mirror telemetry.Mirror = telemetry.Nop{}
	if cfg.TelemetryEnabled() {
		influx, err := telemetry.Connect(telemetry.Config{
			URL:    cfg.InfluxURL,
			Token:  cfg.InfluxToken,
			Org:    cfg.InfluxOrg,
			Bucket: cfg.InfluxBucket,
		})
		if err != nil {
			// The relational store is authoritative; run without the mirror.
			log.Warn("influxdb unavailable, sensor mirror disabled", "error", err)
		} else {
			influx.SetOnError(func(err error) {
				log.Warn("influxdb write failed", "error", err)
			})
			defer influx.Close()
			mirror = influx
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := server.New(e, gormDB, cfg, log, mirror)

	// Add Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go srv.SweepLoginAttempts(ctx, time.Minute)

	go func() {
		log.Info("listening", "port", cfg.Port, "driver", cfg.DBDriver)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
}
