// Package opentelemetry provides extension components for command Handlers
// to enable OpenTelemetry instrumentation.
package opentelemetry
