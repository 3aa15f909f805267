package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/get-eventually/go-commandbus/command"
)

// HandlerInit is the entrypoint of the Command Handler scenario API.
//
// A Command Handler scenario can either set the current evaluation context
// by using Given(), or test a "clean-slate" scenario by using When() directly.
type HandlerInit[T command.Command, R any, H command.TypedHandler[T, R]] struct{}

// Handler is a scenario type to test the result of Commands
// being handled by a Command Handler.
func Handler[T command.Command, R any, H command.TypedHandler[T, R]]() HandlerInit[T, R, H] {
	return HandlerInit[T, R, H]{}
}

// Given sets the Command Handler scenario preconditions.
//
// The Commands provided are handled, in order, by the same Command Handler
// instance before the one specified in When(), and they are expected to succeed.
func (sc HandlerInit[T, R, H]) Given(cmds ...command.Envelope[T]) HandlerGiven[T, R, H] {
	return HandlerGiven[T, R, H]{
		given: cmds,
	}
}

// When provides the Command to evaluate.
func (sc HandlerInit[T, R, H]) When(cmd command.Envelope[T]) HandlerWhen[T, R, H] {
	return HandlerWhen[T, R, H]{
		when: cmd,
	}
}

// HandlerGiven is the state of the scenario once the preconditions
// have been provided using Given().
type HandlerGiven[T command.Command, R any, H command.TypedHandler[T, R]] struct {
	given []command.Envelope[T]
}

// When provides the Command to evaluate.
func (sc HandlerGiven[T, R, H]) When(cmd command.Envelope[T]) HandlerWhen[T, R, H] {
	return HandlerWhen[T, R, H]{
		HandlerGiven: sc,
		when:         cmd,
	}
}

// HandlerWhen is the state of the scenario once the preconditions
// and the Command to evaluate have been provided.
type HandlerWhen[T command.Command, R any, H command.TypedHandler[T, R]] struct {
	HandlerGiven[T, R, H]

	when command.Envelope[T]
}

// Then sets a positive expectation on the scenario outcome, to produce
// the Response provided in input.
func (sc HandlerWhen[T, R, H]) Then(result R) HandlerThen[T, R, H] {
	return HandlerThen[T, R, H]{
		HandlerWhen: sc,
		then:        result,
	}
}

// ThenError sets a negative expectation on the scenario outcome,
// to produce an error value that is similar to the one provided in input.
//
// Error assertion happens using errors.Is(), so the error returned
// by the Command Handler is unwrapped until the cause error to match
// the provided expectation.
func (sc HandlerWhen[T, R, H]) ThenError(err error) HandlerThen[T, R, H] {
	return HandlerThen[T, R, H]{
		HandlerWhen: sc,
		wantError:   true,
		thenError:   err,
	}
}

// ThenFails sets a negative expectation on the scenario outcome,
// to fail the Command execution with no particular assertion on the error returned.
//
// This is useful when the error returned is not important for the Command
// you're trying to test.
func (sc HandlerWhen[T, R, H]) ThenFails() HandlerThen[T, R, H] {
	return HandlerThen[T, R, H]{
		HandlerWhen: sc,
		wantError:   true,
	}
}

// HandlerThen is the state of the scenario once the preconditions
// and expectations have been fully specified.
type HandlerThen[T command.Command, R any, H command.TypedHandler[T, R]] struct {
	HandlerWhen[T, R, H]

	then      R
	thenError error
	wantError bool
}

// AssertOn performs the specified expectations of the scenario, using the Command Handler
// instance produced by the provided factory function.
//
// The Handler is also routed through a command.Bus, so that the scenario
// verifies the Handler behaves the same when dispatched.
func (sc HandlerThen[T, R, H]) AssertOn( //nolint:gocritic
	t *testing.T,
	handlerFactory func() H,
) {
	t.Helper()

	ctx := context.Background()
	bus := command.NewBus()
	command.Register[T, R](bus.Registry(), handlerFactory())

	for _, cmd := range sc.given {
		if _, err := command.Dispatch[T, R](ctx, bus, cmd); !assert.NoError(t, err) {
			return
		}
	}

	result, err := command.Dispatch[T, R](ctx, bus, sc.when)

	if !sc.wantError {
		assert.NoError(t, err)
		assert.Equal(t, sc.then, result)

		return
	}

	if !assert.Error(t, err) {
		return
	}

	if sc.thenError != nil {
		assert.ErrorIs(t, err, sc.thenError)
	}
}
