package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/smart402/core/pkg/contracts"
)

// Registry is an in-memory index of contract documents keyed by contract
// ID. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	contracts map[string]contracts.UCLContract
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{contracts: make(map[string]contracts.UCLContract)}
}

// Register stores or replaces the document under its contract ID.
func (r *Registry) Register(c contracts.UCLContract) error {
	if c.ContractID == "" {
		return fmt.Errorf("register contract: empty contract ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts[c.ContractID] = c
	return nil
}

// Get returns the document registered under id, or ErrNotFound.
func (r *Registry) Get(id string) (contracts.UCLContract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contracts[id]
	if !ok {
		return contracts.UCLContract{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// List returns all registered contract IDs in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.contracts))
	for id := range r.contracts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Unregister removes the document under id. Removing an unknown ID
// returns ErrNotFound.
func (r *Registry) Unregister(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[id]; !ok {
		return fmt.Errorf("unregister %s: %w", id, ErrNotFound)
	}
	delete(r.contracts, id)
	return nil
}

// Len reports the number of registered contracts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contracts)
}
