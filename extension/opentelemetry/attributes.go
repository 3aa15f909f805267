package opentelemetry

import "go.opentelemetry.io/otel/attribute"

// HandleSpanName is the name of the span created by InstrumentedHandler.
const HandleSpanName = "command.Handler.Handle"

// HandleDurationMetric is the name of the histogram recorded by InstrumentedHandler.
const HandleDurationMetric = "commandbus.handler.duration.milliseconds"

var (
	// CommandTypeAttribute is the attribute identifier that contains the
	// Type of the Command being handled.
	CommandTypeAttribute = attribute.Key("command.type")

	// ErrorAttribute is the attribute identifier that reports whether
	// the Command Handler returned an error.
	ErrorAttribute = attribute.Key("error")
)
