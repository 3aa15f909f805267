// Package commandbus is a minimal Command dispatch mediator: Commands are
// routed, synchronously, to the single Handler registered for their Type.
//
// Start from the `command` package, which contains the Registry and the Bus.
// The `extension` packages provide Handler decorators for logging,
// correlation ids and OpenTelemetry instrumentation, while `scenario`
// helps testing Command Handlers in a Given/When/Then fashion.
package commandbus
