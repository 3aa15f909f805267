package logger

import "testing"

var _ Logger = Test{}

// Test is a Logger implementation using a testing.TB instance.
type Test struct{ tb testing.TB }

// NewTest returns a new Logger using the provided testing.TB instance.
func NewTest(tb testing.TB) Test {
	return Test{tb: tb}
}

// Debug uses Logf to print a debug message.
func (t Test) Debug(msg string, fields ...Field) {
	t.tb.Helper()
	t.tb.Logf("[debug] %s {args: %+v}", msg, fields)
}

// Info uses Logf to print an info message.
func (t Test) Info(msg string, fields ...Field) {
	t.tb.Helper()
	t.tb.Logf("[info] %s {args: %+v}", msg, fields)
}

// Error uses Logf to print an error message.
func (t Test) Error(msg string, fields ...Field) {
	t.tb.Helper()
	t.tb.Logf("[error] %s {args: %+v}", msg, fields)
}
