package metrics

import (
	"context"
	"errors"
	"sync"
)

// Registry is the explicit, process-scoped home of installed providers,
// replacing implicit attach-on-first-use globals. A name is installed at
// startup and shut down once at process exit.
type Registry struct {
	mu        sync.Mutex
	providers map[string]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Install registers provider under name. The first install wins: installing
// over an existing name reports false and leaves the registered provider in
// place.
func (r *Registry) Install(name string, provider Provider) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[name]; exists {
		return false
	}
	r.providers[name] = provider
	return true
}

// Lookup returns the provider installed under name.
func (r *Registry) Lookup(name string) (Provider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	provider, ok := r.providers[name]
	return provider, ok
}

// Uninstall removes and returns the provider installed under name without
// shutting it down.
func (r *Registry) Uninstall(name string) (Provider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	provider, ok := r.providers[name]
	if ok {
		delete(r.providers, name)
	}
	return provider, ok
}

// ShutdownAll shuts every installed provider down and empties the registry.
func (r *Registry) ShutdownAll(ctx context.Context) error {
	r.mu.Lock()
	providers := make([]Provider, 0, len(r.providers))
	for _, provider := range r.providers {
		providers = append(providers, provider)
	}
	r.providers = make(map[string]Provider)
	r.mu.Unlock()

	var errs []error
	for _, provider := range providers {
		if err := provider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var defaultRegistry = NewRegistry()

// Install registers provider in the default registry.
func Install(name string, provider Provider) bool {
	return defaultRegistry.Install(name, provider)
}

// Lookup returns a provider from the default registry.
func Lookup(name string) (Provider, bool) {
	return defaultRegistry.Lookup(name)
}

// Uninstall removes a provider from the default registry.
func Uninstall(name string) (Provider, bool) {
	return defaultRegistry.Uninstall(name)
}

// ShutdownAll shuts down every provider in the default registry.
func ShutdownAll(ctx context.Context) error {
	return defaultRegistry.ShutdownAll(ctx)
}
