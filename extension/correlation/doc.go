// Package correlation contains extensions for command Handlers
// to support correlated commands for tracing and debugging purposes.
//
// You can read more about messages correlation here:
// https://blog.arkency.com/correlation-id-and-causation-id-in-evented-systems/
package correlation
