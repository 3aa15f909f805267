package opentelemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/get-eventually/go-commandbus/command"
)

var _ command.Handler = &InstrumentedHandler{}

// InstrumentedHandler is a wrapper type over a command.Handler instance
// to provide instrumentation, in the form of metrics and traces
// using OpenTelemetry.
//
// Errors from the wrapped Handler are recorded and returned unchanged.
//
// Use NewInstrumentedHandler for constructing a new instance of this type.
type InstrumentedHandler struct {
	handler command.Handler

	tracer         trace.Tracer
	handleDuration metric.Int64Histogram
}

func (ih *InstrumentedHandler) registerMetrics(meter metric.Meter) error {
	var err error

	if ih.handleDuration, err = meter.Int64Histogram(
		HandleDurationMetric,
		metric.WithUnit("ms"),
		metric.WithDescription("Duration in milliseconds of command.Handler.Handle operations performed."),
	); err != nil {
		return fmt.Errorf("opentelemetry.InstrumentedHandler: failed to register metric: %w", err)
	}

	return nil
}

// NewInstrumentedHandler returns a wrapper type to provide OpenTelemetry
// instrumentation (metrics and traces) around a command.Handler,
// usually a *command.Bus.
//
// An error is returned if metrics could not be registered.
func NewInstrumentedHandler(handler command.Handler, options ...Option) (*InstrumentedHandler, error) {
	cfg := newConfig(options...)

	ih := &InstrumentedHandler{
		handler: handler,
		tracer:  cfg.tracer(),
	}

	if err := ih.registerMetrics(cfg.meter()); err != nil {
		return nil, err
	}

	return ih, nil
}

// Handle calls the wrapped command.Handler and records metrics
// and traces around it.
func (ih *InstrumentedHandler) Handle(
	ctx context.Context,
	cmd command.GenericEnvelope,
) (response command.Response, err error) {
	attributes := []attribute.KeyValue{
		CommandTypeAttribute.String(command.TypeOf(cmd.Message).String()),
	}

	ctx, span := ih.tracer.Start(ctx, HandleSpanName, trace.WithAttributes(attributes...))
	start := time.Now()

	defer func() {
		attributes := append(attributes, ErrorAttribute.Bool(err != nil))

		duration := time.Since(start)
		ih.handleDuration.Record(ctx, duration.Milliseconds(), metric.WithAttributes(attributes...))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}()

	return ih.handler.Handle(ctx, cmd)
}
