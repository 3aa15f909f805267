package command

import (
	"errors"
	"fmt"
)

var (
	// ErrFailure is the root of every error produced by this package.
	//
	// Errors returned by concrete Handlers are never wrapped with it,
	// so errors.Is(err, ErrFailure) can be used to tell library failures
	// apart from Handler failures.
	ErrFailure = errors.New("command: failure")

	// ErrHandlerNotFound is returned, wrapped in a HandlerNotFoundError,
	// when no Handler has been registered for a Command Type.
	ErrHandlerNotFound = fmt.Errorf("%w: handler not found", ErrFailure)
)

// HandlerNotFoundError is returned by Registry.Get, and transitively by
// Bus.Handle, when no Handler has been registered for the requested Type.
type HandlerNotFoundError struct {
	Type Type
}

func (err *HandlerNotFoundError) Error() string {
	return fmt.Sprintf("command.Registry: no handler registered for type %q", string(err.Type))
}

// Unwrap returns ErrHandlerNotFound.
func (err *HandlerNotFoundError) Unwrap() error { return ErrHandlerNotFound }

// UnexpectedCommandError is returned by a Handler obtained through Erase
// when the Command it receives is not of the type expected by
// the wrapped TypedHandler.
type UnexpectedCommandError struct {
	Expected Type
	Actual   Type
	Command  Command
}

func (err *UnexpectedCommandError) Error() string {
	return fmt.Sprintf(
		"command.Handler: expected command %q, received %q (%T)",
		string(err.Expected), string(err.Actual), err.Command,
	)
}

// Unwrap returns ErrFailure.
func (err *UnexpectedCommandError) Unwrap() error { return ErrFailure }

// UnexpectedResponseError is returned by Dispatch when the Response
// produced by the resolved Handler cannot be converted to the requested type.
type UnexpectedResponseError struct {
	Type     Type
	Response Response
}

func (err *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("command.Dispatch: unexpected response %T for command %q", err.Response, string(err.Type))
}

// Unwrap returns ErrFailure.
func (err *UnexpectedResponseError) Unwrap() error { return ErrFailure }
