package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSN_FromFields(t *testing.T) {
	dsn, err := mysqlDSN(Config{
		Host: "localhost", Port: "3306", User: "root", Name: "hamstech",
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	assert.Contains(t, dsn, "root@tcp(localhost:3306)/hamstech")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "timeout=5s")
}

func TestMySQLDSN_FromURLKeepsRequiredFlags(t *testing.T) {
	dsn, err := mysqlDSN(Config{DatabaseURL: "app:secret@tcp(db:3306)/hams"})
	require.NoError(t, err)

	assert.Contains(t, dsn, "app:secret@tcp(db:3306)/hams")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestMySQLDSN_InvalidURL(t *testing.T) {
	_, err := mysqlDSN(Config{DatabaseURL: "not a dsn"})
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(Config{
		Host: "pg", Port: "5432", User: "hams", Password: "p@ss", Name: "hamstech",
		ApplicationName: "hamstech_api",
	})

	assert.Contains(t, dsn, "postgresql://hams:p%40ss@pg:5432/hamstech?")
	assert.Contains(t, dsn, "timezone=UTC")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "application_name=hamstech_api")
}

func TestPostgresDSN_RespectsExistingParams(t *testing.T) {
	dsn := postgresDSN(Config{DatabaseURL: "postgresql://u:p@h:5432/d?sslmode=require"})

	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "&timezone=UTC")
}
