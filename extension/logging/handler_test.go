package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/get-eventually/go-commandbus/command"
	"github.com/get-eventually/go-commandbus/extension/logging"
	"github.com/get-eventually/go-commandbus/extension/zaplogger"
	"github.com/get-eventually/go-commandbus/logger"
)

type ping struct{}

func (ping) Name() string { return "ping" }

var errPingFailed = errors.New("ping failed")

func TestHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("logs handled commands", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		bus := command.NewBus()
		bus.Registry().Put(command.TypeOf(ping{}), command.HandlerFunc(
			func(context.Context, command.GenericEnvelope) (command.Response, error) {
				return "pong", nil
			},
		))

		handler := logging.NewHandler(bus, zaplogger.Wrap(zap.New(core)))

		response, err := handler.Handle(ctx, command.ToGenericEnvelope(ping{}))
		assert.NoError(t, err)
		assert.Equal(t, "pong", response)

		entries := logs.AllUntimed()
		require.Len(t, entries, 2)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
		assert.Equal(t, "ping", entries[1].ContextMap()["command.type"])
	})

	t.Run("logs failures and returns the error unchanged", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)

		bus := command.NewBus()
		bus.Registry().Put(command.TypeOf(ping{}), command.HandlerFunc(
			func(context.Context, command.GenericEnvelope) (command.Response, error) {
				return nil, errPingFailed
			},
		))

		handler := logging.NewHandler(bus, zaplogger.Wrap(zap.New(core)))

		_, err := handler.Handle(ctx, command.ToGenericEnvelope(ping{}))
		assert.Same(t, errPingFailed, err)

		entries := logs.FilterLevelExact(zapcore.ErrorLevel).AllUntimed()
		require.Len(t, entries, 1)
		assert.Equal(t, errPingFailed.Error(), entries[0].ContextMap()["error"])
	})

	t.Run("works with a nil logger", func(t *testing.T) {
		handler := logging.NewHandler(command.NewBus(), nil)

		_, err := handler.Handle(ctx, command.ToGenericEnvelope(ping{}))
		assert.ErrorIs(t, err, command.ErrHandlerNotFound)
	})

	t.Run("works with the test logger", func(t *testing.T) {
		tracking := command.NewTrackingHandler(nil)
		handler := logging.NewHandler(tracking, logger.NewTest(t))

		_, err := handler.Handle(ctx, command.ToGenericEnvelope(ping{}))
		assert.NoError(t, err)
		assert.Len(t, tracking.RecordedCommands(), 1)
	})
}
