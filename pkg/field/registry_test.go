package field

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	fake := newFakeChrome()
	registry := NewRegistry(WithChrome(fake))

	text := registry.MustRegister(" Text ", bodyField{})
	registry.MustRegister("status", ownsErrorField{})

	got, ok := registry.Lookup("TEXT")
	if !ok || got != text {
		t.Fatalf("expected case-insensitive lookup to return the registered type")
	}
	if got.Name() != "text" {
		t.Fatalf("expected kind to name the decorated type, got %q", got.Name())
	}
	if diff := cmp.Diff([]string{"status", "text"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	out, err := got.Render(Props{Label: "Title"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<label for=>Title</label>") || fake.calls["label"] != 1 {
		t.Fatalf("expected registry defaults to apply, got %q", out)
	}
}

func TestRegistryErrors(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Register("  ", bodyField{}); err == nil {
		t.Fatalf("expected error for blank kind")
	}
	if _, err := registry.Register("text", nil); err == nil {
		t.Fatalf("expected error for nil field")
	}
	if _, ok := registry.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}
