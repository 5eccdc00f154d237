package cli

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	t.Parallel()

	t.Run("get", func(t *testing.T) {
		args := Args{"a", "b", "c"}
		assert.Equal(t, "a", args.Get(0))
		assert.Equal(t, "c", args.Get(2))
		assert.Equal(t, "", args.Get(3))
		assert.Equal(t, "", args.Get(-1))
	})
	t.Run("first and tail", func(t *testing.T) {
		args := Args{"a", "b", "c"}
		assert.Equal(t, "a", args.First())
		if diff := cmp.Diff(Args{"b", "c"}, args.Tail()); diff != "" {
			t.Errorf("unexpected tail (-want +got):\n%s", diff)
		}

		single := Args{"only"}
		assert.Equal(t, Args{"only"}, single.Tail())
		assert.Equal(t, "", Args{}.First())
	})
	t.Run("present", func(t *testing.T) {
		assert.False(t, Args{}.Present())
		assert.True(t, Args{"x"}.Present())
	})
	t.Run("swap", func(t *testing.T) {
		args := Args{"a", "b", "c"}
		require.NoError(t, args.Swap(0, 2))
		assert.Equal(t, Args{"c", "b", "a"}, args)
		require.Error(t, args.Swap(0, 3))
		require.Error(t, args.Swap(-1, 0))
	})
}

// argCountContext builds a minimal context for exercising the argument
// count hooks outside of a full dispatch.
func argCountContext(name string, args ...string) *Context {
	return newContext(nil, &Command{Name: name}, nil, FlagMap{}, FlagMap{}, Args(args))
}

func TestArgsExact(t *testing.T) {
	t.Parallel()

	hook := ArgsExact(1)
	require.NoError(t, hook(context.Background(), argCountContext("run", "5")))

	err := hook(context.Background(), argCountContext("run"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have exactly 1 arguments")

	err = hook(context.Background(), argCountContext("run", "1", "2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have exactly 1 arguments")
}

func TestArgsRange(t *testing.T) {
	t.Parallel()

	hook := ArgsRange(1, 2)
	require.NoError(t, hook(context.Background(), argCountContext("fly", "1")))
	require.NoError(t, hook(context.Background(), argCountContext("fly", "1", "2")))

	err := hook(context.Background(), argCountContext("fly"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have at least 1 arguments")

	err = hook(context.Background(), argCountContext("fly", "1", "2", "3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can have at maximum 2 arguments")
}

func TestArgsRangeUnbounded(t *testing.T) {
	t.Parallel()

	hook := ArgsRange(1, 0)
	require.NoError(t, hook(context.Background(), argCountContext("add", "a", "b", "c", "d")))

	err := hook(context.Background(), argCountContext("add"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have at least 1 arguments")
}

func TestArgsNone(t *testing.T) {
	t.Parallel()

	hook := ArgsNone()
	require.NoError(t, hook(context.Background(), argCountContext("list")))

	err := hook(context.Background(), argCountContext("list", "extra"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not take any arguments")

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, "list", usageErr.Command.Name)
}
