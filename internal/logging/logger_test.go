package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONDefaultFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Format: "json", Version: "1.2.3", Output: &buf})

	log.Info("started", "port", "3000")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "started", entry["msg"])
	assert.Equal(t, "hamstech", entry["service"])
	assert.Equal(t, "1.2.3", entry["version"])
	assert.Equal(t, "3000", entry["port"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Format: "text", Output: &buf})

	log.Info("hello")

	assert.True(t, strings.Contains(buf.String(), "msg=hello"), buf.String())
	assert.Contains(t, buf.String(), "version=dev")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf}).With("component", "throttle")

	log.Info("x")

	assert.Contains(t, buf.String(), `"component":"throttle"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
