package command

import (
	"context"
	"sync"
)

var _ Handler = &TrackingHandler{}

// TrackingHandler is a Handler that keeps every Command it receives in-memory,
// before optionally delegating to another Handler.
//
// Useful for testing, this implementation is thread-safe.
type TrackingHandler struct {
	handler Handler

	mx               sync.RWMutex
	recordedCommands []GenericEnvelope
}

// NewTrackingHandler creates a new TrackingHandler delegating to the provided Handler.
//
// When handler is nil, the TrackingHandler only records Commands and
// returns a nil Response.
func NewTrackingHandler(handler Handler) *TrackingHandler {
	return &TrackingHandler{handler: handler}
}

// Handle records the provided Command internally, then calls the delegate
// Handler, if any.
func (th *TrackingHandler) Handle(ctx context.Context, cmd GenericEnvelope) (Response, error) {
	th.mx.Lock()
	th.recordedCommands = append(th.recordedCommands, cmd)
	th.mx.Unlock()

	if th.handler == nil {
		return nil, nil
	}

	return th.handler.Handle(ctx, cmd)
}

// RecordedCommands returns the list of Commands recorded by the Handler.
func (th *TrackingHandler) RecordedCommands() []GenericEnvelope {
	th.mx.RLock()
	defer th.mx.RUnlock()

	commands := make([]GenericEnvelope, len(th.recordedCommands))
	copy(commands, th.recordedCommands)

	return commands
}

// FlushCommands returns the list of Commands recorded by the Handler and
// resets the internal list to nil.
func (th *TrackingHandler) FlushCommands() []GenericEnvelope {
	th.mx.Lock()
	defer th.mx.Unlock()

	commands := th.recordedCommands
	th.recordedCommands = nil

	return commands
}
