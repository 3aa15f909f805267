package command

import "context"

// Handler is the interface that defines a Command Handler,
// a component that receives a Command and executes it to produce a Response.
//
// Bus is itself a Handler, so decorators written against this interface
// apply equally to a single Handler or to a whole Bus.
type Handler interface {
	Handle(ctx context.Context, cmd GenericEnvelope) (Response, error)
}

// HandlerFunc is a functional type that implements the Handler interface.
// Useful for testing and stateless Handlers.
//
// Calling the function directly and calling Handle are equivalent:
// Handle invokes the function exactly once.
type HandlerFunc func(context.Context, GenericEnvelope) (Response, error)

// Handle handles the provided Command through the functional Handler.
func (fn HandlerFunc) Handle(ctx context.Context, cmd GenericEnvelope) (Response, error) {
	return fn(ctx, cmd)
}

// TypedHandler is a Handler for a specific Command type T, producing
// a Response of type R.
//
// Use Erase, or Register, to plug a TypedHandler into a Registry.
type TypedHandler[T Command, R any] interface {
	Handle(ctx context.Context, cmd Envelope[T]) (R, error)
}

// TypedHandlerFunc is a functional type that implements the TypedHandler interface.
type TypedHandlerFunc[T Command, R any] func(context.Context, Envelope[T]) (R, error)

// Handle handles the provided Command through the functional TypedHandler.
func (fn TypedHandlerFunc[T, R]) Handle(ctx context.Context, cmd Envelope[T]) (R, error) {
	return fn(ctx, cmd)
}

// Erase adapts a TypedHandler into a Handler.
//
// The returned Handler fails with UnexpectedCommandError if it receives
// a Command that is not of type T.
func Erase[T Command, R any](handler TypedHandler[T, R]) Handler {
	return HandlerFunc(func(ctx context.Context, cmd GenericEnvelope) (Response, error) {
		envelope, ok := FromGenericEnvelope[T](cmd)
		if !ok {
			return nil, &UnexpectedCommandError{
				Expected: typeOfZero[T](),
				Actual:   TypeOf(cmd.Message),
				Command:  cmd.Message,
			}
		}

		response, err := handler.Handle(ctx, envelope)

		return response, err
	})
}
