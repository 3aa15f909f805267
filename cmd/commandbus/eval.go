package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/get-eventually/go-commandbus/command"
	"github.com/get-eventually/go-commandbus/extension/correlation"
	"github.com/get-eventually/go-commandbus/extension/logging"
	"github.com/get-eventually/go-commandbus/extension/opentelemetry"
	"github.com/get-eventually/go-commandbus/extension/zaplogger"
	"github.com/get-eventually/go-commandbus/internal/calculator"
)

type app struct {
	config *Config
	logger *zap.Logger
}

// newHandler wires the calculator Handlers into a Bus, decorated with
// correlation ids, logging and OpenTelemetry instrumentation.
func (a *app) newHandler(accumulator *calculator.Accumulator) (command.Handler, error) {
	registry := command.NewSyncRegistry(command.NewInMemoryRegistry())
	bus := command.NewBus(command.WithRegistry(registry))

	calculator.Register(bus.Registry(), accumulator)

	instrumented, err := opentelemetry.NewInstrumentedHandler(bus)
	if err != nil {
		return nil, fmt.Errorf("commandbus.main: failed to instrument bus, %w", err)
	}

	logged := logging.NewHandler(instrumented, zaplogger.Wrap(a.logger))

	return correlation.NewHandler(logged, nil), nil
}

func parseOperations(args []string) ([]command.Command, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("commandbus.main: expected operation and value pairs, got %d arguments", len(args))
	}

	cmds := make([]command.Command, 0, len(args)/2)

	for i := 0; i < len(args); i += 2 {
		value, err := strconv.ParseInt(args[i+1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("commandbus.main: invalid value %q, %w", args[i+1], err)
		}

		switch op := strings.ToLower(args[i]); op {
		case "add":
			cmds = append(cmds, calculator.Add{Value: value})
		case "sub":
			cmds = append(cmds, calculator.Add{Value: -value})
		case "mul", "multiply":
			cmds = append(cmds, calculator.Multiply{Value: value})
		case "div", "divide":
			cmds = append(cmds, calculator.Divide{Value: value})
		default:
			// Unknown operations are still dispatched, and rejected by the Bus.
			cmds = append(cmds, unknownOperation(op))
		}
	}

	return cmds, nil
}

type unknownOperation string

func (op unknownOperation) Name() string { return "calculator." + string(op) }

func (a *app) eval(ctx context.Context, initial int64, args []string) (int64, error) {
	cmds, err := parseOperations(args)
	if err != nil {
		return 0, err
	}

	accumulator := calculator.NewAccumulator(initial)

	handler, err := a.newHandler(accumulator)
	if err != nil {
		return 0, err
	}

	for _, cmd := range cmds {
		if _, err := handler.Handle(ctx, command.ToGenericEnvelope(cmd)); err != nil {
			return accumulator.Total(), err
		}
	}

	return accumulator.Total(), nil
}

func newEvalCommand(a *app) *cobra.Command {
	var initial int64

	cmd := &cobra.Command{
		Use:   "eval [operation value]...",
		Short: "Evaluate a sequence of calculator operations",
		Long: `eval dispatches one command per operation through the command bus,
starting from the initial total. Supported operations: add, sub, mul, div.`,
		Example: "  commandbus eval add 3 mul 4 div 2",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := a.eval(cmd.Context(), initial, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)

			return err
		},
	}

	cmd.Flags().Int64Var(&initial, "initial", a.config.Initial, "initial total of the accumulator")

	return cmd
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "commandbus",
		Short:         "Dispatch calculator commands through a command bus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newEvalCommand(a))

	return root
}
