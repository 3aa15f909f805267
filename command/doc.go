// Package command contains the types and interfaces to route Commands
// to the single Command Handler responsible for them.
//
// A Registry maps each Command Type to a Handler, and a Bus resolves
// the Handler for an incoming Command and delegates to it, synchronously.
// Errors produced by Handlers are returned to the caller unchanged;
// the only error produced by the Bus itself is HandlerNotFoundError.
//
// A typical setup looks like this:
//
//	registry := command.NewInMemoryRegistry()
//	command.Register[CreateUser, UserID](registry, createUserHandler)
//
//	bus := command.NewBus(command.WithRegistry(registry))
//
//	id, err := command.Dispatch[CreateUser, UserID](ctx, bus, command.ToEnvelope(CreateUser{...}))
package command
