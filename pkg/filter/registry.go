package filter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-fieldchrome/pkg/field"
)

// Entry is one line of a filter summary.
type Entry struct {
	ID      string
	Name    string
	Value   any
	Display any
	Text    string
}

type registration struct {
	seq    uint64
	record field.Registration
}

// Registry tracks mounted filter fields in registration order.
type Registry struct {
	mu      sync.RWMutex
	seq     uint64
	entries []registration
	limit   int
}

// Option configures a Registry.
type Option func(*Registry)

// WithConcurrency caps the number of deferred display values resolved at
// once. Values below one mean no limit.
func WithConcurrency(limit int) Option {
	return func(r *Registry) {
		r.limit = limit
	}
}

// New creates an empty registry.
func New(options ...Option) *Registry {
	registry := &Registry{}
	for _, opt := range options {
		if opt != nil {
			opt(registry)
		}
	}
	return registry
}

// Register records a mounted field. The returned function removes exactly
// this registration and is safe to call more than once.
func (r *Registry) Register(record field.Registration) func() {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.entries = append(r.entries, registration{seq: seq, record: record})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(seq) })
	}
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns the field names of live registrations in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		names = append(names, entry.record.Name)
	}
	return names
}

// Summary resolves the display value of every registered field that has a
// non-empty value in values. Entries keep registration order. The first
// resolution error cancels the rest and is returned.
func (r *Registry) Summary(ctx context.Context, values map[string]any) ([]Entry, error) {
	r.mu.RLock()
	records := make([]field.Registration, 0, len(r.entries))
	for _, entry := range r.entries {
		records = append(records, entry.record)
	}
	r.mu.RUnlock()

	entries := make([]Entry, 0, len(records))
	displays := make([]field.DisplayValue, 0, len(records))
	for _, record := range records {
		value, ok := values[record.Name]
		if !ok || isEmpty(value) || record.GetDisplayValue == nil {
			continue
		}
		entries = append(entries, Entry{ID: record.ID, Name: record.Name, Value: value})
		displays = append(displays, record.GetDisplayValue(value))
	}

	group, groupCtx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		group.SetLimit(r.limit)
	}
	for idx := range entries {
		display := displays[idx]
		if !display.IsDeferred() {
			entries[idx].Display = display.Value()
			continue
		}
		group.Go(func() error {
			resolved, err := display.Resolve(groupCtx)
			if err != nil {
				return fmt.Errorf("filter: resolve %q: %w", entries[idx].Name, err)
			}
			entries[idx].Display = resolved
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for idx := range entries {
		entries[idx].Text = text(entries[idx].Display)
	}
	return entries, nil
}

func (r *Registry) remove(seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, entry := range r.entries {
		if entry.seq == seq {
			r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
			return
		}
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func text(display any) string {
	switch v := display.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, text(item))
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
