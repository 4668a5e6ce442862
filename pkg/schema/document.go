package schema

import (
	"context"
	"errors"
)

// Document wraps a raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location is shorthand for Source().Location().
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Specs returns the field specs of the named component schema.
func (d Document) Specs(ctx context.Context, schemaName string) ([]FieldSpec, error) {
	return LoadOpenAPI(ctx, d.raw, schemaName)
}

// Lint reports x-fieldchrome misuse in the document.
func (d Document) Lint(ctx context.Context) ([]Violation, error) {
	return Lint(ctx, d.raw)
}
