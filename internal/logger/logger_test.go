package logger_test

import (
	"testing"

	"github.com/cyphera/cyphera-feesim/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  zapcore.Level
	}{
		{name: "debug", input: "debug", want: zapcore.DebugLevel},
		{name: "upper case warn", input: "WARN", want: zapcore.WarnLevel},
		{name: "warning alias", input: "warning", want: zapcore.WarnLevel},
		{name: "error", input: "error", want: zapcore.ErrorLevel},
		{name: "unknown falls back to info", input: "verbose", want: zapcore.InfoLevel},
		{name: "empty falls back to info", input: "", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestInitLoggerWithConfig(t *testing.T) {
	logger.InitLoggerWithConfig(logger.LoggerConfig{Level: "warn", Stage: "prod", EnableJSON: true})
	require.NotNil(t, logger.Log)
	assert.False(t, logger.Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Log.Core().Enabled(zapcore.WarnLevel))

	logger.InitLoggerWithConfig(logger.LoggerConfig{Level: "debug", Stage: "local", EnableColor: true})
	require.NotNil(t, logger.Log)
	assert.True(t, logger.Log.Core().Enabled(zapcore.DebugLevel))
}

func TestInitLogger_LevelFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "unset defaults to info", level: "", wantDebug: false, wantInfo: true},
		{name: "debug", level: "debug", wantDebug: true, wantInfo: true},
		{name: "error", level: "error", wantDebug: false, wantInfo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			logger.InitLogger("test")
			require.NotNil(t, logger.Log)
			assert.Equal(t, tt.wantDebug, logger.Log.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.wantInfo, logger.Log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
