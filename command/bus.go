package command

import (
	"context"
	"fmt"
	"reflect"
)

// Dispatcher represents a component that routes Commands into
// their appropriate Command Handlers.
//
// Dispatch returns when the Command Handler has finished execution,
// with the Response and error it produced.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd GenericEnvelope) (Response, error)
}

var (
	_ Handler    = &Bus{}
	_ Dispatcher = &Bus{}
)

// Bus is a synchronous, in-memory Command Bus: it resolves the Handler
// registered for the Type of the incoming Command and delegates to it.
//
// Bus is a Handler itself. To change the dispatching policy (e.g. adding
// logging or tracing), wrap the Bus in another Handler: see the packages
// under extension/ for some examples.
//
// Use NewBus to create a new Bus instance.
type Bus struct {
	registry Registry
}

// BusOption specifies Bus configuration options.
type BusOption interface {
	apply(*Bus)
}

type registryOption struct{ Registry }

func (o registryOption) apply(b *Bus) {
	b.registry = o.Registry
}

// WithRegistry specifies the Registry used by the Bus to resolve Handlers.
//
// The Registry is not copied: Handlers put in it after the Bus has been
// created are immediately visible to the Bus.
// By default, a new and empty InMemoryRegistry is used.
//
// NewBus panics if registry is a nil pointer wrapped in a non-nil interface.
func WithRegistry(registry Registry) BusOption {
	return registryOption{registry}
}

// NewBus returns a new Bus instance.
func NewBus(options ...BusOption) *Bus {
	bus := &Bus{}

	for _, opt := range options {
		opt.apply(bus)
	}

	if bus.registry == nil {
		bus.registry = NewInMemoryRegistry()
	}

	if v := reflect.ValueOf(bus.registry); v.Kind() == reflect.Pointer && v.IsNil() {
		panic(fmt.Sprintf("command.NewBus: nil %T registry provided", bus.registry))
	}

	return bus
}

// Registry returns the Registry used by the Bus.
//
// Use it to register Handlers after the Bus has been created.
func (b *Bus) Registry() Registry {
	return b.registry
}

// Handle routes the Command to the Handler registered for its Type,
// and returns the Response and error produced by it, unchanged.
//
// A HandlerNotFoundError is returned if no Handler has been registered
// for the Command Type.
func (b *Bus) Handle(ctx context.Context, cmd GenericEnvelope) (Response, error) {
	handler, err := b.registry.Get(TypeOf(cmd.Message))
	if err != nil {
		return nil, err
	}

	return handler.Handle(ctx, cmd)
}

// Dispatch is an alias of Handle.
func (b *Bus) Dispatch(ctx context.Context, cmd GenericEnvelope) (Response, error) {
	return b.Handle(ctx, cmd)
}

// Dispatch sends the typed Command through the Dispatcher and type-asserts
// the Response into R.
//
// Errors from the Dispatcher are returned unchanged. If the Response
// is not of type R, an UnexpectedResponseError is returned.
// A nil Response is returned as the zero value of R.
func Dispatch[T Command, R any](ctx context.Context, dispatcher Dispatcher, cmd Envelope[T]) (R, error) {
	var zero R

	response, err := dispatcher.Dispatch(ctx, cmd.ToGenericEnvelope())
	if err != nil {
		return zero, err
	}

	if response == nil {
		return zero, nil
	}

	result, ok := response.(R)
	if !ok {
		return zero, &UnexpectedResponseError{
			Type:     TypeOf(cmd.Message),
			Response: response,
		}
	}

	return result, nil
}
