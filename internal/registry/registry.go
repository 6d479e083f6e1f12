package registry

import (
	"fmt"
	"sync"

	"github.com/nfrund/voidinbox/internal/config"
)

// Key is a typed key for registering and retrieving services, e.g.
// Key[*responder.Responder]("void.responder").
type Key[T any] string

// Registry lets modules share services at startup. Safe for concurrent use.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates a registry holding the application's configuration.
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
	val, ok := r.services.Load(string(key))
	if !ok {
		var zero T
		return zero, false
	}
	result, ok := val.(T)
	return result, ok
}

// MustGet retrieves a service or panics. Use it only while wiring at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}
