package db_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamstech/backend/internal/db"
	"github.com/hamstech/backend/internal/db/dbtest"
	"github.com/hamstech/backend/internal/models"
)

func TestOpen_SQLiteMigrates(t *testing.T) {
	gormDB := dbtest.Open(t)

	for _, table := range []string{"users", "hamsters", "devices", "sensor_readings"} {
		assert.True(t, gormDB.Migrator().HasTable(table), table)
	}
	assert.True(t, gormDB.Migrator().HasColumn(&models.User{}, "rol"))
	require.NoError(t, db.Ping(context.Background(), gormDB))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := db.Open(db.Config{Driver: "oracle"})
	assert.Error(t, err)
}

func TestIsDuplicateKey_SQLite(t *testing.T) {
	gormDB := dbtest.Open(t)

	require.NoError(t, gormDB.Create(&models.User{Name: "A", Email: "a@x.com", PasswordHash: "h", Role: models.RoleNormal}).Error)
	err := gormDB.Create(&models.User{Name: "B", Email: "a@x.com", PasswordHash: "h", Role: models.RoleNormal}).Error

	require.Error(t, err)
	assert.True(t, db.IsDuplicateKey(err))
}

func TestIsDuplicateKey_DriverErrors(t *testing.T) {
	assert.True(t, db.IsDuplicateKey(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, db.IsDuplicateKey(&pgconn.PgError{Code: "23503"}))
	assert.True(t, db.IsDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.False(t, db.IsDuplicateKey(&mysql.MySQLError{Number: 1452}))
	assert.False(t, db.IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, db.IsDuplicateKey(nil))
}

func TestClose(t *testing.T) {
	gormDB, err := db.Open(db.Config{Driver: "sqlite", DatabaseURL: "file:close_test?mode=memory&cache=shared", ConnectTimeout: time.Second})
	require.NoError(t, err)
	require.NoError(t, db.Close(gormDB))
	assert.Error(t, db.Ping(context.Background(), gormDB))
}
