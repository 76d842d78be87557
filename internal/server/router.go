package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/hamstech/backend/internal/auth"
	"github.com/hamstech/backend/internal/config"
	"github.com/hamstech/backend/internal/importer"
	"github.com/hamstech/backend/internal/logging"
	"github.com/hamstech/backend/internal/repository"
	"github.com/hamstech/backend/internal/telemetry"
)

type Server struct {
	DB  *gorm.DB
	Cfg config.AppConfig
	Log *logging.Logger

	Auth     *auth.Service
	Tokens   *auth.Tokens
	Throttle *auth.Throttle

	Users    *repository.UserRepository
	Hamsters *repository.HamsterRepository
	Devices  *repository.DeviceRepository
	Readings *repository.SensorReadingRepository
	Importer *importer.Importer
	Mirror   telemetry.Mirror
}

// New wires the repositories and auth flows onto e and registers every
// route. The schema must already be migrated.
func New(e *echo.Echo, db *gorm.DB, cfg config.AppConfig, log *logging.Logger, mirror telemetry.Mirror) *Server {
	if log == nil {
		log = logging.Default()
	}
	if mirror == nil {
		mirror = telemetry.Nop{}
	}

	users := repository.NewUserRepository(db)
	hasher := auth.NewHasher(cfg.BcryptCost)
	throttle := auth.NewThrottle(cfg.LoginMaxAttempts, cfg.LoginLockout)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTExpiry)

	s := &Server{
		DB:       db,
		Cfg:      cfg,
		Log:      log,
		Auth:     auth.NewService(users, hasher, throttle, tokens),
		Tokens:   tokens,
		Throttle: throttle,
		Users:    users,
		Hamsters: repository.NewHamsterRepository(db),
		Devices:  repository.NewDeviceRepository(db),
		Readings: repository.NewSensorReadingRepository(db),
		Importer: importer.New(users, hasher),
		Mirror:   mirror,
	}

	e.HTTPErrorHandler = s.httpErrorHandler

	// Security middleware
	e.Use(s.requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	}

	e.GET("/health", s.Health)
	e.GET("/blog", s.Blog)

	// Auth
	e.POST("/register", s.Register)
	e.POST("/login", s.Login)
	e.GET("/profile", s.Profile, s.JWTMiddleware())

	// Users
	e.GET("/users", s.ListUsers)
	e.GET("/users/:id", s.GetUser)
	e.DELETE("/users/:id", s.DeleteUser)
	var uploadLimit []echo.MiddlewareFunc
	if cfg.MaxUploadMB > 0 {
		uploadLimit = append(uploadLimit, middleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB)))
	}
	e.POST("/import-excel", s.ImportUsers, uploadLimit...)

	// Hamsters
	e.GET("/hamsters", s.ListHamsters)
	e.GET("/hamsters/:id", s.GetHamster)
	e.POST("/hamsters", s.CreateHamster)
	e.PUT("/hamsters/:id", s.UpdateHamster)
	e.DELETE("/hamsters/:id", s.DeleteHamster)

	// Devices
	e.GET("/devices", s.ListDevices)
	e.GET("/devices/:id", s.GetDevice)
	e.POST("/devices", s.CreateDevice)
	e.PUT("/devices/:id", s.UpdateDevice)
	e.DELETE("/devices/:id", s.DeleteDevice)

	// Sensor telemetry
	e.POST("/sensor-data", s.CreateSensorReading)
	e.GET("/sensor-data", s.ListSensorReadings)
	e.GET("/sensor-data/:id", s.GetSensorReading)

	return s
}

// SweepLoginAttempts drops expired throttle records every interval until
// ctx is cancelled.
func (s *Server) SweepLoginAttempts(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Throttle.Sweep(); n > 0 {
				s.Log.Debug("login attempts swept", "removed", n)
			}
		}
	}
}
