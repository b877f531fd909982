package form

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores collectors by name, providing discovery and duplication
// safeguards for callers that let users choose an input frontend.
type Registry struct {
	mu         sync.RWMutex
	collectors map[string]Collector
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make(map[string]Collector),
	}
}

// Register adds a collector by its Name(). Duplicate names return an error.
func (r *Registry) Register(collector Collector) error {
	if collector == nil {
		return fmt.Errorf("form: collector is required")
	}
	name := collector.Name()
	if name == "" {
		return fmt.Errorf("form: collector name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collectors[name]; exists {
		return fmt.Errorf("form: collector %q already registered", name)
	}

	r.collectors[name] = collector
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(collector Collector) {
	if err := r.Register(collector); err != nil {
		panic(err)
	}
}

// Get retrieves a collector by name.
func (r *Registry) Get(name string) (Collector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collector, ok := r.collectors[name]
	if !ok {
		return nil, fmt.Errorf("form: collector %q not found", name)
	}
	return collector, nil
}

// List returns a sorted list of collector names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.collectors))
	for name := range r.collectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a collector is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.collectors[name]
	return ok
}
