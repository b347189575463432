// Package registry holds the client factories the builder resolves against.
// Factories are registered explicitly at process start, in the order they
// should be consulted; there is no runtime plugin scanning. The first call to
// Snapshot freezes the set for the remainder of the process, after which
// registration is a programming error.
package registry

import (
	"sync"

	"github.com/cecil-the-coder/livy-client-kit/pkg/types"
)

// Registry is an ordered, populate-once collection of client factories.
// Registration order is significant: it is the precedence order the builder
// uses, and it never changes once the snapshot is taken.
//
// The zero value is ready to use.
type Registry struct {
	mu        sync.Mutex
	once      sync.Once
	factories []types.ClientFactory
	snapshot  []types.ClientFactory
	frozen    bool
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register appends factory to the registry. It panics when factory is nil or
// when the registry has already been frozen by Snapshot; both are
// programming errors, following the database/sql driver-registration
// convention.
func (r *Registry) Register(factory types.ClientFactory) {
	if factory == nil {
		panic("registry: Register called with nil factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		panic("registry: Register called after Snapshot froze the registry")
	}
	r.factories = append(r.factories, factory)
}

// Snapshot returns the registered factories in registration order. The first
// call freezes the registry; every call returns a fresh copy of the same
// frozen list, so callers cannot perturb each other. An empty snapshot is
// valid — it becomes an error only when resolution is attempted against it.
//
// Snapshot is safe to trigger concurrently from multiple first-time callers.
func (r *Registry) Snapshot() []types.ClientFactory {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.frozen = true
		r.snapshot = r.factories
	})
	out := make([]types.ClientFactory, len(r.snapshot))
	copy(out, r.snapshot)
	return out
}

// Frozen reports whether Snapshot has been called.
func (r *Registry) Frozen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frozen
}

// Len returns the number of registered factories.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.factories)
}

// defaultRegistry backs the package-level functions. Builders use it unless
// given their own Registry.
var defaultRegistry = New()

// Register adds factory to the process-wide default registry. Integrators
// typically call it from an init function or early in main.
func Register(factory types.ClientFactory) {
	defaultRegistry.Register(factory)
}

// Snapshot returns the default registry's factories, freezing it on first
// use.
func Snapshot() []types.ClientFactory {
	return defaultRegistry.Snapshot()
}

// Default returns the process-wide default registry.
func Default() *Registry {
	return defaultRegistry
}
