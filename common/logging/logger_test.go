package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySetupGlobalLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	require.NoError(t, TrySetupGlobalLevel("debug"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.Error(t, TrySetupGlobalLevel("loud"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLogSeverityFromEnv(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	t.Setenv("LOG_LEVEL", "warn")
	SetLogSeverityFromEnv()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	t.Setenv("LOG_LEVEL", "")
	SetLogSeverityFromEnv()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestMakeBold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "client", makeBold("client", true))
	assert.Equal(t, "\x1b[1mclient\x1b[0m", makeBold("client", false))
	assert.Equal(t, "[rpc]\t", makeComponentFormatter(true)("rpc"))
}
