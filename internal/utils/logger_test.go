package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})
		logger.Info().Msg("built demo")
		assert.Contains(t, buf.String(), "built demo")
	})

	t.Run("pretty format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Level: "info", Format: "pretty", Output: &buf})
		logger.Info().Msg("built demo")
		assert.Contains(t, buf.String(), "built demo")
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf, Verbose: true})
		logger.Debug().Msg("debug test")
		assert.Contains(t, buf.String(), "debug test")
	})
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	logger.WithComponent("renderer").WithDemo("basic").WithURL("https://example.test/data.json").
		Info().Msg("chained test")

	output := buf.String()
	assert.Contains(t, output, `"component":"renderer"`)
	assert.Contains(t, output, `"demo":"basic"`)
	assert.Contains(t, output, "https://example.test/data.json")
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logFunc   func(*Logger)
		shouldLog bool
	}{
		{"debug level logs debug", "debug", func(l *Logger) { l.Debug().Msg("debug") }, true},
		{"info level doesn't log debug", "info", func(l *Logger) { l.Debug().Msg("debug") }, false},
		{"warn level logs warn", "warn", func(l *Logger) { l.Warn().Msg("warn") }, true},
		{"error level drops info", "error", func(l *Logger) { l.Info().Msg("info") }, false},
		{"unknown level defaults to info", "loud", func(l *Logger) { l.Info().Msg("info") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerOptions{Level: tt.level, Format: "json", Output: &buf})

			tt.logFunc(logger)

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithComponent("x").Info().Msg("discarded")
	})
}
