// Package scenario provides a Given/When/Then API to test
// command Handlers in a declarative way.
package scenario
