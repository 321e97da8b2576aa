package fnkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/funcell/funcell/fn"
	"github.com/funcell/funcell/fnkit"
)

func TestLogged_PassesResultThrough(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	inner := fn.Of(func(x int) int { return x + 1 })
	wrapped := fnkit.Logged(&inner, logger)

	got, err := wrapped.Invoke(41)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, logs.Len())
}

func TestLogged_DistinctWrapperIds(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	inner := fn.Of(func(x int) int { return x })
	a := fnkit.Logged(&inner, logger)
	b := fnkit.Logged(&inner, logger)

	a.Call(1)
	b.Call(1)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].Message, entries[1].Message)
}

func TestLogged_EmptyTargetLogsAndReraises(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	empty := fn.New[int, int]()
	wrapped := fnkit.Logged(&empty, logger)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, fn.ErrNoTarget)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zap.ErrorLevel, logs.All()[0].Level)
	}()
	_, _ = wrapped.Invoke(1)
}
