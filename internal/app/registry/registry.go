// Package registry holds the capability catalog: the set of operations the
// intent resolver may choose from, keyed by name, each with its parameter
// schema and optional compensation declaration. Registration is fail-fast so
// a misdeclared capability is caught at startup, not at dispatch time.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/capability"
)

// Registry is a thread-safe capability catalog.
type Registry struct {
	mu   sync.RWMutex
	caps map[string]capability.Capability
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{caps: make(map[string]capability.Capability)}
}

// Register adds a capability to the catalog. Returns a validation error for
// incomplete entries and domain.ErrConflict for duplicate names.
func (r *Registry) Register(c capability.Capability) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("registering capability %q: %w", c.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.caps[c.Name]; exists {
		return fmt.Errorf("registering capability %q: %w", c.Name, domain.ErrConflict)
	}
	r.caps[c.Name] = c
	return nil
}

// Get returns the capability by name.
func (r *Registry) Get(name string) (capability.Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[name]
	return c, ok
}

// All returns the catalog sorted by name, suitable for building tool
// definitions for the resolver.
func (r *Registry) All() []capability.Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]capability.Capability, 0, len(r.caps))
	for _, c := range r.caps {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
