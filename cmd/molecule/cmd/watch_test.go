package cmd

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula"
	mdwparser "github.com/msto63/molecule/foundation/formula/parser"
)

func nextEngine(t *testing.T, engines <-chan *formula.Engine) *formula.Engine {
	t.Helper()
	select {
	case engine, ok := <-engines:
		require.True(t, ok, "engine channel closed")
		return engine
	case <-time.After(5 * time.Second):
		t.Fatal("no engine after config change")
		return nil
	}
}

func TestWatchConfig_ReloadsOnChange(t *testing.T) {
	path := writeConfig(t, testConfig)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engines, err := watchConfig(ctx, path, mdwlog.NewNop())
	require.NoError(t, err)

	// an invalid file is skipped, the following valid one is delivered
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(testConfig, "max_depth = 8", "max_depth = -1", 1)), 0o644))
	time.Sleep(2 * reloadDelay)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(testConfig, "max_depth = 8", "max_depth = 1", 1)), 0o644))

	engine := nextEngine(t, engines)
	_, err = engine.Parse(ctx, "K4[ON(SO3)2]2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mdwparser.NestingTooDeep))

	result, err := engine.Parse(ctx, "Mg(OH)2")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), result.Atoms)
}

func TestWatchConfig_ClosesOnCancel(t *testing.T) {
	path := writeConfig(t, testConfig)
	ctx, cancel := context.WithCancel(context.Background())

	engines, err := watchConfig(ctx, path, mdwlog.NewNop())
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-engines:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("engine channel not closed after cancel")
	}
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	_, err := watchConfig(context.Background(), "/nonexistent/molecule/molecule.toml", mdwlog.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch config directory")
}
