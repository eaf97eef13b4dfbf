package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		log, err := New(Config{Level: "info", Environment: env})
		require.NoError(t, err, env)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel), env)
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel), env)
	}
}

func TestNew_NoStacktraces(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		assert.True(t, newConfig(Config{Environment: env}).DisableStacktrace, env)
	}
}
