package fields

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldchrome/pkg/field"
	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

// KindReference renders fields pointing at another record.
const KindReference = "reference"

// ErrMissingTarget is returned when a reference mounts without knowing the
// resource it points at.
var ErrMissingTarget = errors.New("fields: reference target is required")

// LookupFunc resolves the display label of record id in target.
type LookupFunc func(ctx context.Context, target, id string) (string, error)

// Reference renders the id of a related record. With a Lookup its display
// value is deferred until the filter summary resolves it.
type Reference struct {
	// Target is used when props carry no "target" attr.
	Target string
	Lookup LookupFunc
}

var (
	_ field.Field         = Reference{}
	_ field.DisplayValuer = Reference{}
	_ field.Mounter       = Reference{}
)

// Render implements field.Field.
func (r Reference) Render(props field.Props) (string, error) {
	var builder strings.Builder
	builder.WriteString(`<input`)
	writeAttr(&builder, "type", "text")
	writeIdentity(&builder, props)
	if value := stringify(props.Input.Value); value != "" {
		writeAttr(&builder, "value", value)
	}
	if target := r.target(props); target != "" {
		writeAttr(&builder, "data-relation-target", target)
	}
	builder.WriteString(`>`)
	return builder.String(), nil
}

// DisplayValue defers to Lookup for non empty values.
func (r Reference) DisplayValue(props field.Props, value any) field.DisplayValue {
	id := strings.TrimSpace(stringify(value))
	if r.Lookup == nil || id == "" {
		return field.Immediate(value)
	}
	target := r.target(props)
	lookup := r.Lookup
	return field.Deferred(func(ctx context.Context) (any, error) {
		label, err := lookup(ctx, target, id)
		if err != nil {
			return nil, fmt.Errorf("fields: lookup %s %q: %w", target, id, err)
		}
		return label, nil
	})
}

// OnMount rejects references without a target.
func (r Reference) OnMount(_ context.Context, props field.Props) error {
	if r.target(props) == "" {
		return fmt.Errorf("%w: field %q", ErrMissingTarget, props.Input.Name)
	}
	return nil
}

func (r Reference) target(props field.Props) string {
	if target := props.StringAttr(schema.AttrTarget); target != "" {
		return target
	}
	return strings.TrimSpace(r.Target)
}
