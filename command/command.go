package command

import "reflect"

// Command is a request for the system to perform an action, addressed
// to exactly one Handler.
//
// In order to enforce this concept, it is suggested to name Command types
// using "present tense".
//
// The value returned by Name is the Command type identifier, and it is
// used as the routing key by Registry and Bus. Name must return the same
// value for every instance of a Command type, including its zero value.
type Command interface {
	Name() string
}

// Type is the identifier of a Command type, as returned by Command.Name.
//
// Types are matched exactly: there is no hierarchical or structural
// fallback when resolving a Handler for a Type.
type Type string

// String returns the Type identifier.
func (t Type) String() string { return string(t) }

// TypeOf returns the Type of the provided Command.
//
// A nil Command has an empty Type.
func TypeOf(cmd Command) Type {
	if cmd == nil {
		return ""
	}

	return Type(cmd.Name())
}

// typeOfZero returns the Type of the Command T without requiring an instance.
//
// For pointer types, Name is called on a pointer to the zero value of the
// element type, since value receivers cannot be called on nil pointers.
func typeOfZero[T Command]() Type {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Pointer {
		var zero T
		return TypeOf(zero)
	}

	cmd, ok := reflect.New(typ.Elem()).Interface().(T)
	if !ok {
		return ""
	}

	return TypeOf(cmd)
}

// Response is the result produced by a Handler after handling a Command.
//
// Responses are opaque to this package: their shape is decided by each
// concrete Handler.
type Response any

// Metadata contains some data related to a Command that are not functional
// for the Command itself, but instead functioning as supporting information
// to provide additional context.
type Metadata map[string]string

// With returns a new Metadata reference holding the value addressed using
// the specified key.
func (m Metadata) With(key, value string) Metadata {
	if m == nil {
		m = make(Metadata)
	}

	m[key] = value

	return m
}

// Merge merges the other Metadata provided in input with the current map.
// Returns a pointer to the extended metadata map.
func (m Metadata) Merge(other Metadata) Metadata {
	if m == nil {
		return other
	}

	for k, v := range other {
		m[k] = v
	}

	return m
}

// Envelope carries both a Command and some optional Metadata attached to it.
type Envelope[T Command] struct {
	Message  T
	Metadata Metadata
}

// ToGenericEnvelope returns a GenericEnvelope version of the current Envelope instance.
func (e Envelope[T]) ToGenericEnvelope() GenericEnvelope {
	return GenericEnvelope{
		Message:  e.Message,
		Metadata: e.Metadata,
	}
}

// GenericEnvelope is a Command Envelope that depends solely on the Command interface,
// not a specific generic Command type.
//
// GenericEnvelope is the unit routed by Bus and accepted by Handler.
type GenericEnvelope Envelope[Command]

// FromGenericEnvelope attempts to type-cast a GenericEnvelope instance into
// a strongly-typed Command Envelope.
//
// A boolean guard is returned to signal whether the type-casting was successful
// or not.
func FromGenericEnvelope[T Command](cmd GenericEnvelope) (Envelope[T], bool) {
	if v, ok := cmd.Message.(T); ok {
		return Envelope[T]{
			Message:  v,
			Metadata: cmd.Metadata,
		}, true
	}

	return Envelope[T]{}, false
}

// ToEnvelope is a convenience function that wraps the provided Command type
// into an Envelope, with no metadata attached to it.
func ToEnvelope[T Command](cmd T) Envelope[T] {
	return Envelope[T]{
		Message:  cmd,
		Metadata: nil,
	}
}

// ToGenericEnvelope wraps the provided Command into a GenericEnvelope,
// with no metadata attached to it.
func ToGenericEnvelope(cmd Command) GenericEnvelope {
	return GenericEnvelope{
		Message:  cmd,
		Metadata: nil,
	}
}
