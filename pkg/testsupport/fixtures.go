package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

// MustLoadSpecs reads an OpenAPI fixture and returns the field specs of the
// named component schema.
func MustLoadSpecs(t *testing.T, path, schemaName string) []schema.FieldSpec {
	t.Helper()

	specs, err := LoadSpecsFromPath(path, schemaName)
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	return specs
}

// LoadSpecsFromPath returns field specs without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadSpecsFromPath(path, schemaName string) ([]schema.FieldSpec, error) {
	if path == "" {
		return nil, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read document: %w", err)
	}
	specs, err := schema.LoadOpenAPI(context.Background(), data, schemaName)
	if err != nil {
		return nil, fmt.Errorf("testsupport: load specs: %w", err)
	}
	return specs, nil
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
