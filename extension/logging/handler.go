// Package logging provides a command.Handler decorator that reports
// every handled Command through a logger.Logger.
package logging

import (
	"context"
	"time"

	"github.com/get-eventually/go-commandbus/command"
	"github.com/get-eventually/go-commandbus/logger"
)

var _ command.Handler = Handler{}

// Handler logs the outcome of the Commands handled by the wrapped command.Handler.
//
// Errors are logged and returned unchanged.
type Handler struct {
	handler command.Handler
	logger  logger.Logger
}

// NewHandler returns a new Handler wrapping the provided command.Handler.
// A nil logger.Logger disables logging.
func NewHandler(handler command.Handler, l logger.Logger) Handler {
	return Handler{
		handler: handler,
		logger:  l,
	}
}

// Handle delegates to the wrapped command.Handler and logs the result.
func (h Handler) Handle(ctx context.Context, cmd command.GenericEnvelope) (command.Response, error) {
	typ := command.TypeOf(cmd.Message)

	logger.Debug(h.logger, "command.Handler: handling command",
		logger.With("command.type", typ.String()),
	)

	start := time.Now()
	response, err := h.handler.Handle(ctx, cmd)
	duration := time.Since(start)

	if err != nil {
		logger.Error(h.logger, "command.Handler: failed to handle command",
			logger.With("command.type", typ.String()),
			logger.With("duration", duration),
			logger.With("error", err),
		)

		return response, err
	}

	logger.Info(h.logger, "command.Handler: command handled",
		logger.With("command.type", typ.String()),
		logger.With("duration", duration),
	)

	return response, nil
}
