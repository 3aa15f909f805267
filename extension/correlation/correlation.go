package correlation

import "context"

// Metadata keys set by Handler on the Command Envelope.
const (
	CommandIDKey     = "Command-Id"
	CorrelationIDKey = "Correlation-Id"
	CausationIDKey   = "Causation-Id"
)

type (
	correlationCtxKey struct{}
	causationCtxKey   struct{}
)

// WithCorrelationID returns a new Context carrying the provided correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationCtxKey{}, id)
}

// WithCausationID returns a new Context carrying the provided causation id.
func WithCausationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, causationCtxKey{}, id)
}

// CorrelationID returns the correlation id carried by the Context, if any.
func CorrelationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationCtxKey{}).(string)
	return id, ok && id != ""
}

// CausationID returns the causation id carried by the Context, if any.
func CausationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(causationCtxKey{}).(string)
	return id, ok && id != ""
}
