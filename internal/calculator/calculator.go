// Package calculator contains a small Command-driven accumulator,
// used to showcase how Commands and Handlers are wired to a command.Bus.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/get-eventually/go-commandbus/command"
)

// ErrDivisionByZero is returned by DivideHandler when dividing by zero.
var ErrDivisionByZero = errors.New("calculator: division by zero")

// Accumulator holds the running total updated by the calculator Handlers.
type Accumulator struct {
	mx    sync.Mutex
	total int64
}

// NewAccumulator returns a new Accumulator starting from the provided total.
func NewAccumulator(initial int64) *Accumulator {
	return &Accumulator{total: initial}
}

// Total returns the current total.
func (a *Accumulator) Total() int64 {
	a.mx.Lock()
	defer a.mx.Unlock()

	return a.total
}

func (a *Accumulator) update(fn func(int64) (int64, error)) (int64, error) {
	a.mx.Lock()
	defer a.mx.Unlock()

	total, err := fn(a.total)
	if err != nil {
		return a.total, err
	}

	a.total = total

	return total, nil
}

// Add adds Value to the total.
type Add struct{ Value int64 }

// Name implements command.Command.
func (Add) Name() string { return "calculator.Add" }

// Multiply multiplies the total by Value.
type Multiply struct{ Value int64 }

// Name implements command.Command.
func (Multiply) Name() string { return "calculator.Multiply" }

// Divide divides the total by Value, using integer division.
type Divide struct{ Value int64 }

// Name implements command.Command.
func (Divide) Name() string { return "calculator.Divide" }

// AddHandler handles Add commands, returning the new total.
type AddHandler struct {
	Accumulator *Accumulator
}

// Handle implements command.TypedHandler.
func (h AddHandler) Handle(_ context.Context, cmd command.Envelope[Add]) (int64, error) {
	return h.Accumulator.update(func(total int64) (int64, error) {
		return total + cmd.Message.Value, nil
	})
}

// MultiplyHandler handles Multiply commands, returning the new total.
type MultiplyHandler struct {
	Accumulator *Accumulator
}

// Handle implements command.TypedHandler.
func (h MultiplyHandler) Handle(_ context.Context, cmd command.Envelope[Multiply]) (int64, error) {
	return h.Accumulator.update(func(total int64) (int64, error) {
		return total * cmd.Message.Value, nil
	})
}

// DivideHandler handles Divide commands, returning the new total.
type DivideHandler struct {
	Accumulator *Accumulator
}

// Handle implements command.TypedHandler.
//
// ErrDivisionByZero is returned when Value is zero, leaving the total untouched.
func (h DivideHandler) Handle(_ context.Context, cmd command.Envelope[Divide]) (int64, error) {
	return h.Accumulator.update(func(total int64) (int64, error) {
		if cmd.Message.Value == 0 {
			return 0, fmt.Errorf("calculator.DivideHandler: failed to divide %d, %w", total, ErrDivisionByZero)
		}

		return total / cmd.Message.Value, nil
	})
}

// Register registers all the calculator Handlers in the Registry,
// sharing the same Accumulator.
func Register(registry command.Registry, accumulator *Accumulator) {
	command.Register[Add, int64](registry, AddHandler{Accumulator: accumulator})
	command.Register[Multiply, int64](registry, MultiplyHandler{Accumulator: accumulator})
	command.Register[Divide, int64](registry, DivideHandler{Accumulator: accumulator})
}
