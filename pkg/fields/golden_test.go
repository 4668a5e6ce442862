package fields

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldchrome/pkg/field"
	"github.com/goliatone/go-fieldchrome/pkg/testsupport"
)

func TestArticleFormGolden(t *testing.T) {
	specs := testsupport.MustLoadSpecs(t, filepath.Join("testdata", "article.yaml"), "Article")
	registry := newTestRegistry(t, Defaults{})
	resolver := NewResolver()

	values := map[string]any{"title": "Notes", "status": "draft", "author_id": "a-1", "featured": false}
	messages := map[string]string{"title": "Too short"}

	var out strings.Builder
	for _, spec := range specs {
		decorated, ok := registry.Lookup(resolver.Resolve(spec))
		if !ok {
			t.Fatalf("no kind for %s", spec.Name)
		}
		props := spec.Props(values[spec.Name])
		if message := messages[spec.Name]; message != "" {
			props.Meta = field.Meta{Touched: true, Error: message}
		}
		markup, err := decorated.Render(props)
		if err != nil {
			t.Fatalf("render %s: %v", spec.Name, err)
		}
		out.WriteString(markup)
		out.WriteByte('\n')
	}

	goldenPath := filepath.Join("testdata", "article.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(out.String())) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("article form mismatch (-want +got):\n%s", diff)
	}
}
