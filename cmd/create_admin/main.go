package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hamstech/backend/internal/auth"
	"github.com/hamstech/backend/internal/config"
	"github.com/hamstech/backend/internal/db"
	"github.com/hamstech/backend/internal/logging"
	"github.com/hamstech/backend/internal/repository"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: create_admin <email> <password> <name> [role]")
		fmt.Println("Example: create_admin admin@example.com password123 \"Admin User\"")
		fmt.Println("Role can be: admin, normal (default: admin)")
		os.Exit(1)
	}

	email := os.Args[1]
	password := os.Args[2]
	name := os.Args[3]
	role := "admin"
	if len(os.Args) > 4 {
		role = os.Args[4]
	}

	cfg := config.Load()
	log := logging.New(logging.Options{Level: cfg.LogLevel, Format: "text"})

	gormDB, err := db.Open(db.Config{
		Driver:         cfg.DBDriver,
		DatabaseURL:    cfg.DatabaseURL,
		Host:           cfg.DBHost,
		Port:           cfg.DBPort,
		User:           cfg.DBUser,
		Password:       cfg.DBPass,
		Name:           cfg.DBName,
		PoolSize:       1,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(gormDB)

	if err := db.Migrate(gormDB); err != nil {
		log.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	users := repository.NewUserRepository(gormDB)
	svc := auth.NewService(
		users,
		auth.NewHasher(cfg.BcryptCost),
		auth.NewThrottle(cfg.LoginMaxAttempts, cfg.LoginLockout),
		auth.NewTokens(cfg.JWTSecret, cfg.JWTExpiry),
	)

	user, err := svc.Register(context.Background(), auth.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		fmt.Printf("User with email %s already exists\n", email)
		os.Exit(1)
	case errors.Is(err, auth.ErrInvalidRole):
		fmt.Printf("Invalid role: %s. Must be 'admin' or 'normal'\n", role)
		os.Exit(1)
	case err != nil:
		log.Error("failed to create user", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s user %s (id %d)\n", user.Role, user.Email, user.ID)
}
