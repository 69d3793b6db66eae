package registry

import (
	"fmt"
	"sync"

	"github.com/nfrund/profileview/internal/config"
)

// Key is a type-safe key for registering and retrieving services, e.g.
// "moduleName.serviceName".
type Key[T any] string

// Registry lets modules share services at runtime. It is safe for
// concurrent use.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates a registry carrying the application's configuration.
func New(cfg config.Provider) *Registry {
	return &Registry{cfg: cfg}
}

// Config returns the configuration provider.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers value under key, replacing any previous value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get retrieves the service registered under key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	var zero T
	val, ok := r.services.Load(string(key))
	if !ok {
		return zero, false
	}
	result, ok := val.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// MustGet retrieves a service or panics. Use it only for startup wiring.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %s", string(key)))
	}
	return val
}
