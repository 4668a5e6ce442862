package field

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry keeps one decorated type per field kind so capability negotiation
// and override resolution happen once per kind rather than per render.
type Registry struct {
	mu       sync.RWMutex
	defaults []Option
	fields   map[string]*Decorated
}

// NewRegistry creates an empty registry. defaults are applied to every
// Register call before the call's own options.
func NewRegistry(defaults ...Option) *Registry {
	return &Registry{
		defaults: slices.Clone(defaults),
		fields:   make(map[string]*Decorated),
	}
}

// Register decorates impl under kind. Existing entries are replaced.
func (r *Registry) Register(kind string, impl Field, opts ...Option) (*Decorated, error) {
	if kind = normalize(kind); kind == "" {
		return nil, fmt.Errorf("field: kind is required")
	}

	all := make([]Option, 0, len(r.defaults)+len(opts)+1)
	all = append(all, r.defaults...)
	all = append(all, WithName(kind))
	all = append(all, opts...)

	decorated, err := Decorate(impl, all...)
	if err != nil {
		return nil, fmt.Errorf("field: register %q: %w", kind, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields[kind] = decorated
	return decorated, nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(kind string, impl Field, opts ...Option) *Decorated {
	decorated, err := r.Register(kind, impl, opts...)
	if err != nil {
		panic(err)
	}
	return decorated
}

// Lookup returns the decorated type registered under kind.
func (r *Registry) Lookup(kind string) (*Decorated, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	decorated, ok := r.fields[normalize(kind)]
	return decorated, ok
}

// Names returns the registered kinds, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
