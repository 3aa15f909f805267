package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get-eventually/go-commandbus/command"
)

func TestHandlerFunc(t *testing.T) {
	ctx := context.Background()
	resp := &response{value: 1}

	calls := 0
	fn := command.HandlerFunc(func(_ context.Context, _ command.GenericEnvelope) (command.Response, error) {
		calls++
		return resp, nil
	})

	cmd := command.ToGenericEnvelope(commandTest1{})

	direct, directErr := fn(ctx, cmd)
	assert.Equal(t, 1, calls)

	handled, handledErr := fn.Handle(ctx, cmd)
	assert.Equal(t, 2, calls)

	assert.Same(t, direct, handled)
	assert.Same(t, resp, handled)
	assert.NoError(t, directErr)
	assert.NoError(t, handledErr)
}

func TestErase(t *testing.T) {
	ctx := context.Background()

	typed := command.TypedHandlerFunc[commandTest1, int](
		func(_ context.Context, cmd command.Envelope[commandTest1]) (int, error) {
			return cmd.Message.value * 2, nil
		},
	)

	handler := command.Erase[commandTest1, int](typed)

	t.Run("handles the expected command type", func(t *testing.T) {
		metadata := command.Metadata{"key": "value"}

		result, err := handler.Handle(ctx, command.GenericEnvelope{
			Message:  commandTest1{value: 21},
			Metadata: metadata,
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("fails with a different command type", func(t *testing.T) {
		result, err := handler.Handle(ctx, command.ToGenericEnvelope(commandTest2{}))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, command.ErrFailure)

		var unexpectedErr *command.UnexpectedCommandError
		require.True(t, errors.As(err, &unexpectedErr))
		assert.Equal(t, command.Type("command_test_1"), unexpectedErr.Expected)
		assert.Equal(t, command.Type("command_test_2"), unexpectedErr.Actual)
		assert.Equal(t, commandTest2{}, unexpectedErr.Command)
	})

	t.Run("reports the expected type of pointer commands", func(t *testing.T) {
		handler := command.Erase[*createUser, string](command.TypedHandlerFunc[*createUser, string](
			func(_ context.Context, cmd command.Envelope[*createUser]) (string, error) {
				return cmd.Message.username, nil
			},
		))

		_, err := handler.Handle(ctx, command.ToGenericEnvelope(commandTest1{}))

		var unexpectedErr *command.UnexpectedCommandError
		require.True(t, errors.As(err, &unexpectedErr))
		assert.Equal(t, command.Type("create_user"), unexpectedErr.Expected)
		assert.Equal(t, command.Type("command_test_1"), unexpectedErr.Actual)
	})

	t.Run("passes metadata to the typed handler", func(t *testing.T) {
		var received command.Metadata

		handler := command.Erase[commandTest1, int](command.TypedHandlerFunc[commandTest1, int](
			func(_ context.Context, cmd command.Envelope[commandTest1]) (int, error) {
				received = cmd.Metadata
				return 0, nil
			},
		))

		_, err := handler.Handle(ctx, command.GenericEnvelope{
			Message:  commandTest1{},
			Metadata: command.Metadata{"Correlation-Id": "abc"},
		})

		assert.NoError(t, err)
		assert.Equal(t, command.Metadata{"Correlation-Id": "abc"}, received)
	})
}
