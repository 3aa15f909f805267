package correlation

import (
	"context"

	"github.com/google/uuid"

	"github.com/get-eventually/go-commandbus/command"
)

// Generator is a function that returns a new unique identifier.
type Generator func() string

var _ command.Handler = Handler{}

// Handler is a command.Handler decorator that attaches a Command id,
// a correlation id and a causation id to the Metadata of every Command,
// before delegating to the wrapped Handler.
//
// Ids already present in the Command Metadata are preserved. Otherwise,
// correlation and causation ids are taken from the Context and, if missing,
// default to the newly generated Command id.
//
// The Context passed to the wrapped Handler carries the correlation id, and
// the Command id as causation id, so that Commands dispatched from within
// a Handler are correlated to the one being handled.
type Handler struct {
	handler   command.Handler
	generator Generator
}

// NewHandler returns a new Handler wrapping the provided command.Handler.
//
// If generator is nil, random UUIDs are used.
func NewHandler(handler command.Handler, generator Generator) Handler {
	if generator == nil {
		generator = uuid.NewString
	}

	return Handler{
		handler:   handler,
		generator: generator,
	}
}

// Handle enriches the Command Metadata and delegates to the wrapped Handler.
//
// The Metadata map of the Envelope received in input is not modified.
func (h Handler) Handle(ctx context.Context, cmd command.GenericEnvelope) (command.Response, error) {
	metadata := make(command.Metadata, len(cmd.Metadata)+3).Merge(cmd.Metadata)

	commandID, ok := metadata[CommandIDKey]
	if !ok || commandID == "" {
		commandID = h.generator()
	}

	correlationID, ok := metadata[CorrelationIDKey]
	if !ok || correlationID == "" {
		if correlationID, ok = CorrelationID(ctx); !ok {
			correlationID = commandID
		}
	}

	causationID, ok := metadata[CausationIDKey]
	if !ok || causationID == "" {
		if causationID, ok = CausationID(ctx); !ok {
			causationID = commandID
		}
	}

	cmd.Metadata = metadata.
		With(CommandIDKey, commandID).
		With(CorrelationIDKey, correlationID).
		With(CausationIDKey, causationID)

	ctx = WithCorrelationID(ctx, correlationID)
	ctx = WithCausationID(ctx, commandID)

	return h.handler.Handle(ctx, cmd)
}
