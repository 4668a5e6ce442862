package fields

import (
	"testing"

	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

func TestResolveBuiltins(t *testing.T) {
	resolver := NewResolver()

	cases := []struct {
		name   string
		spec   schema.FieldSpec
		expect string
	}{
		{
			name:   "explicit kind wins",
			spec:   schema.FieldSpec{Type: "boolean", Kind: "text"},
			expect: KindText,
		},
		{
			name:   "relation",
			spec:   schema.FieldSpec{Type: "string", Relation: &schema.RelationSpec{Target: "authors"}},
			expect: KindReference,
		},
		{
			name:   "relation without target",
			spec:   schema.FieldSpec{Type: "string", Relation: &schema.RelationSpec{}},
			expect: KindText,
		},
		{
			name:   "boolean",
			spec:   schema.FieldSpec{Type: "boolean"},
			expect: KindCheckbox,
		},
		{
			name:   "options",
			spec:   schema.FieldSpec{Type: "string", Options: []schema.Option{{Value: "a"}}},
			expect: KindSelect,
		},
		{
			name:   "fallback",
			spec:   schema.FieldSpec{Type: "string"},
			expect: KindText,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolver.Resolve(tc.spec); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestResolvePriorityAndOrder(t *testing.T) {
	resolver := NewResolver()
	resolver.Register("tags", 95, func(spec schema.FieldSpec) bool { return spec.Type == "array" })
	resolver.Register("chips", 95, func(spec schema.FieldSpec) bool { return spec.Type == "array" })

	spec := schema.FieldSpec{Type: "array", Relation: &schema.RelationSpec{Target: "tags"}}
	if got := resolver.Resolve(spec); got != "tags" {
		t.Fatalf("expected first registered rule to win the tie, got %q", got)
	}

	resolver.SetFallback("textarea")
	if got := resolver.Resolve(schema.FieldSpec{Type: "string"}); got != "textarea" {
		t.Fatalf("expected custom fallback, got %q", got)
	}
}
