package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup_Production(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	require.NoError(t, Setup(false, "linecount", "test"))
	assert.False(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.ErrorLevel))
	assert.Same(t, Logger, zap.L())
}

func TestSetup_Debug(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	require.NoError(t, Setup(true, "linecount", "test"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
