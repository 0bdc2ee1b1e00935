package logging

import (
	"testing"

	"gearsum/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
	}{
		{"default", config.LoggingConfig{}, false, zapcore.InfoLevel},
		{"warn json", config.LoggingConfig{Level: "warn", Format: "json"}, false, zapcore.WarnLevel},
		{"error console", config.LoggingConfig{Level: "error", Format: "console"}, false, zapcore.ErrorLevel},
		{"verbose wins", config.LoggingConfig{Level: "error"}, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			require.NoError(t, err)
			defer func() { _ = logger.Sync() }()

			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestFor_Categories(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)
	cfg := config.LoggingConfig{Categories: map[string]bool{string(CategoryParts): false}}

	For(base, cfg, CategorySchematic).Info("enabled")
	For(base, cfg, CategoryParts).Info("disabled")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "enabled", entry.Message)
	assert.Equal(t, "schematic", entry.LoggerName)
}

func TestFor_NilBase(t *testing.T) {
	logger := For(nil, config.LoggingConfig{}, CategoryInput)
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	logger, id := WithRunID(zap.New(core))
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, id, logs.All()[0].ContextMap()["run_id"])

	_, other := WithRunID(zap.New(core))
	assert.NotEqual(t, id, other)
}
