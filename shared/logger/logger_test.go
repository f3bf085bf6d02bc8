package logger_test

import (
	"bytes"
	"errors"
	"hotel/config"
	"hotel/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("room is not available"))

	assert.Contains(t, buf.String(), "room is not available")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
		{name: "empty uses no level", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)
			log.Logger = log.Output(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetOutput(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "hotel"

	assert.NotPanics(t, func() { logger.SetOutput(cfg) })
}
