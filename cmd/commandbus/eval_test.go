package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/get-eventually/go-commandbus/command"
	"github.com/get-eventually/go-commandbus/internal/calculator"
)

func newTestApp() *app {
	return &app{
		config: &Config{Initial: 0},
		logger: zap.NewNop(),
	}
}

func TestParseOperations(t *testing.T) {
	cmds, err := parseOperations([]string{"add", "3", "SUB", "1", "mul", "4", "div", "2"})
	require.NoError(t, err)
	assert.Equal(t, []command.Command{
		calculator.Add{Value: 3},
		calculator.Add{Value: -1},
		calculator.Multiply{Value: 4},
		calculator.Divide{Value: 2},
	}, cmds)

	_, err = parseOperations([]string{"add"})
	assert.Error(t, err)

	_, err = parseOperations([]string{"add", "three"})
	assert.Error(t, err)
}

func TestEval(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches every operation in order", func(t *testing.T) {
		total, err := newTestApp().eval(ctx, 1, []string{"add", "3", "mul", "4", "div", "2"})
		assert.NoError(t, err)
		assert.Equal(t, int64(8), total)
	})

	t.Run("stops at the first handler failure", func(t *testing.T) {
		total, err := newTestApp().eval(ctx, 10, []string{"add", "2", "div", "0", "add", "1"})
		assert.ErrorIs(t, err, calculator.ErrDivisionByZero)
		assert.Equal(t, int64(12), total)
	})

	t.Run("unknown operations fail with handler not found", func(t *testing.T) {
		_, err := newTestApp().eval(ctx, 0, []string{"pow", "2"})

		var notFoundErr *command.HandlerNotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, command.Type("calculator.pow"), notFoundErr.Type)
	})
}

func TestRootCommand(t *testing.T) {
	var out bytes.Buffer

	root := newRootCommand(newTestApp())
	root.SetOut(&out)
	root.SetArgs([]string{"eval", "--initial", "2", "add", "3", "mul", "5"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, "25\n", out.String())
}

func TestConfig(t *testing.T) {
	t.Setenv("COMMANDBUS_LOG_LEVEL", "debug")
	t.Setenv("COMMANDBUS_INITIAL", "7")

	config, err := ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, int64(7), config.Initial)

	logger, err := config.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	config.Log.Level = "not-a-level"
	_, err = config.NewLogger()
	assert.Error(t, err)
}
