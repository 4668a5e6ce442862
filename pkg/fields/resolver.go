package fields

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

// Matcher decides whether a kind should render the supplied field spec.
type Matcher func(spec schema.FieldSpec) bool

type rule struct {
	kind     string
	priority int
	match    Matcher
	order    int
}

// Resolver picks the field kind for a spec. An explicit Kind wins; otherwise
// the highest priority matching rule does, ties falling back to
// registration order. Unmatched specs resolve to the fallback kind.
type Resolver struct {
	mu       sync.RWMutex
	rules    []rule
	fallback string
}

// NewResolver constructs a resolver with the built-in matchers registered.
func NewResolver() *Resolver {
	r := &Resolver{fallback: KindText}
	r.registerBuiltins()
	return r
}

// Register adds a matcher for kind. Higher priority values take precedence.
func (r *Resolver) Register(kind string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// SetFallback changes the kind used when no rule matches.
func (r *Resolver) SetFallback(kind string) {
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		r.mu.Lock()
		r.fallback = trimmed
		r.mu.Unlock()
	}
}

// Resolve returns the kind for spec.
func (r *Resolver) Resolve(spec schema.FieldSpec) string {
	if explicit := strings.TrimSpace(spec.Kind); explicit != "" {
		return explicit
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	fallback := r.fallback
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(spec) {
			return entry.kind
		}
	}
	return fallback
}

func (r *Resolver) registerBuiltins() {
	r.Register(KindReference, 90, func(spec schema.FieldSpec) bool {
		return spec.Relation != nil && strings.TrimSpace(spec.Relation.Target) != ""
	})

	r.Register(KindCheckbox, 80, func(spec schema.FieldSpec) bool {
		return spec.Type == "boolean"
	})

	r.Register(KindSelect, 70, func(spec schema.FieldSpec) bool {
		return len(spec.Options) > 0
	})
}
