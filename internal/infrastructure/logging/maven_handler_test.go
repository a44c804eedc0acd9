package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
)

func TestMavenHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewMavenHandler(&buf, nil)).With("system", "api")

	logger.Info("reconciliation complete", "match_count", 7)

	line := buf.String()
	require.NotEmpty(t, line)
	// A buffer is not a terminal, so no color codes appear.
	assert.NotContains(t, line, "\033[")
	assert.Contains(t, line, "[INFO] [api]")
	assert.Contains(t, line, "reconciliation complete match_count=7")
}

func TestMavenHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	level := slog.LevelWarn
	logger := slog.New(NewMavenHandler(&buf, &slog.HandlerOptions{Level: level}))

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN]")
}

func TestNewLogger_ParsesLevel(t *testing.T) {
	// Mostly a smoke test: the constructor must not panic on any of the
	// accepted level names.
	for _, lvl := range []string{"debug", "info", "warn", "warning", "error", ""} {
		logger := NewLogger(config.LoggingConfig{Level: lvl})
		assert.NotNil(t, logger)
	}
}
