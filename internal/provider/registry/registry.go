package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davidbz/policybot/internal/domain"
)

// Registry implements the BackendRegistry interface.
type Registry struct {
	mu       sync.RWMutex
	backends map[domain.BackendID]domain.Backend
}

// NewRegistry creates a new backend registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:       sync.RWMutex{},
		backends: make(map[domain.BackendID]domain.Backend),
	}
}

// Register adds a backend to the registry.
func (r *Registry) Register(_ context.Context, backend domain.Backend) error {
	if backend == nil {
		return errors.New("backend cannot be nil")
	}

	id := backend.ID()
	if id == "" {
		return errors.New("backend id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[id]; exists {
		return fmt.Errorf("backend %s already registered", id)
	}

	r.backends[id] = backend

	return nil
}

// Get retrieves a backend by identifier.
func (r *Registry) Get(_ context.Context, id domain.BackendID) (domain.Backend, error) {
	if id == "" {
		return nil, errors.New("backend id cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, exists := r.backends[id]
	if !exists {
		return nil, fmt.Errorf("backend %s not found", id)
	}

	return backend, nil
}

// Available reports whether a backend is registered and has its credentials.
func (r *Registry) Available(_ context.Context, id domain.BackendID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, exists := r.backends[id]
	return exists && backend.Configured()
}

// Status returns the configured flag of every registered backend.
// The free backend is always reported available.
func (r *Registry) Status(_ context.Context) map[domain.BackendID]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := make(map[domain.BackendID]bool, len(r.backends)+1)
	status[domain.FreeBackend] = true
	for id, backend := range r.backends {
		status[id] = backend.Configured()
	}

	return status
}
