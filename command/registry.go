package command

import (
	"fmt"
	"sync"
)

// Registry maps Command Types to the Handler responsible for them.
//
// At most one Handler is associated to a Type at any time.
type Registry interface {
	// Get returns the Handler currently associated to the Type,
	// or a HandlerNotFoundError if none was registered.
	Get(typ Type) (Handler, error)

	// Put associates the Handler to the Type, replacing any
	// Handler previously registered for it.
	Put(typ Type, handler Handler)
}

var (
	_ Registry = &InMemoryRegistry{}
	_ Registry = &SyncRegistry{}
)

// InMemoryRegistry is the default Registry implementation, backed by a map.
//
// InMemoryRegistry is not safe for concurrent registration and lookup:
// either register all Handlers before dispatching, or wrap it in a SyncRegistry.
//
// The zero value is an empty registry ready to use.
type InMemoryRegistry struct {
	handlers map[Type]Handler
}

// NewInMemoryRegistry returns a new, empty InMemoryRegistry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{handlers: make(map[Type]Handler)}
}

// Put adds the specified Handler into the routing table for the Command Type.
//
// Please note, when registering multiple Handlers for the same Command Type,
// the last registration will overwrite any previous Handler registration.
//
// Put panics if the Handler is nil.
func (r *InMemoryRegistry) Put(typ Type, handler Handler) {
	if handler == nil {
		panic(fmt.Sprintf("command.InMemoryRegistry: nil handler registered for type %q", string(typ)))
	}

	if r.handlers == nil {
		r.handlers = make(map[Type]Handler)
	}

	r.handlers[typ] = handler
}

// Get returns the Handler registered for the Command Type.
//
// Get returns a HandlerNotFoundError if no Handler has been registered.
func (r *InMemoryRegistry) Get(typ Type) (Handler, error) {
	handler, ok := r.handlers[typ]
	if !ok {
		return nil, &HandlerNotFoundError{Type: typ}
	}

	return handler, nil
}

// Len returns the number of Command Types with a registered Handler.
func (r *InMemoryRegistry) Len() int {
	return len(r.handlers)
}

// SyncRegistry wraps a Registry to make it safe for concurrent use,
// allowing Handlers to be registered while Commands are being dispatched.
//
// The zero value guards a new InMemoryRegistry, created on the first Put.
type SyncRegistry struct {
	mx       sync.RWMutex
	registry Registry
}

// NewSyncRegistry returns a SyncRegistry guarding the provided Registry.
// A new InMemoryRegistry is used if registry is nil.
//
// The wrapped Registry must not be accessed directly afterwards.
func NewSyncRegistry(registry Registry) *SyncRegistry {
	if registry == nil {
		registry = NewInMemoryRegistry()
	}

	return &SyncRegistry{registry: registry}
}

// Put calls the wrapped Registry.Put holding the write lock.
func (r *SyncRegistry) Put(typ Type, handler Handler) {
	r.mx.Lock()
	defer r.mx.Unlock()

	if r.registry == nil {
		r.registry = NewInMemoryRegistry()
	}

	r.registry.Put(typ, handler)
}

// Get calls the wrapped Registry.Get holding the read lock.
func (r *SyncRegistry) Get(typ Type) (Handler, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if r.registry == nil {
		return nil, &HandlerNotFoundError{Type: typ}
	}

	return r.registry.Get(typ)
}

// Register puts the TypedHandler in the Registry, under the Type
// of the Command T.
//
// The Type is computed on an empty instance of T (a pointer to the zero
// value, when T is a pointer type): make sure T.Name does not depend on
// the Command contents.
func Register[T Command, R any](registry Registry, handler TypedHandler[T, R]) {
	registry.Put(typeOfZero[T](), Erase(handler))
}
