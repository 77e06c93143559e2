package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_Level(t *testing.T) {
	restore := Replace(nil)
	defer restore()

	require.NoError(t, Init("production", "warn"))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, Init("development", "bogus"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Replace(zap.New(core))

	Warn("[Reconcile] drift", zap.Uint64("item_id", 11))
	Debug("dropped")
	Named("stock-audit").Info("started")
	restore()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "[Reconcile] drift", entries[0].Message)
	assert.Equal(t, "stock-audit", entries[1].LoggerName)
}
