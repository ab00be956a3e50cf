package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerDefaultLevel(t *testing.T) {
	t.Setenv(LevelEnv, "")
	require.NoError(t, InitLogger())
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestInitLoggerFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "debug")
	require.NoError(t, InitLogger())
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitLoggerBadLevel(t *testing.T) {
	t.Setenv(LevelEnv, "loud")
	assert.Error(t, InitLogger())
}
