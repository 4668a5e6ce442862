package schema

import (
	"strings"

	"github.com/goliatone/go-fieldchrome/pkg/field"
)

// Attribute keys set on field.Props.Attrs by FieldSpec.Props.
const (
	AttrOptions  = "options"
	AttrRequired = "required"
	AttrFormat   = "format"
	AttrType     = "type"
	AttrTarget   = "target"
)

// Option is a selectable value with its display label.
type Option struct {
	Value any
	Label string
}

// RelationSpec configures the Add/Edit tools of a field referencing another
// record. Empty hrefs still enable the action; the anchor just has no href.
type RelationSpec struct {
	Target   string
	Add      bool
	AddHref  string
	Edit     bool
	EditHref string
}

// FieldSpec describes one field derived from a schema property.
type FieldSpec struct {
	Name     string
	Label    string
	HelpText string
	Type     string
	Format   string
	Required bool
	Options  []Option
	Order    int
	// Kind, when set, names the field kind to render with and bypasses
	// kind resolution.
	Kind     string
	Relation *RelationSpec
}

// Props builds decorated field props for the spec with the given value.
// Validation state is left to the caller.
func (s FieldSpec) Props(value any) field.Props {
	props := field.Props{
		ID:       "fg-" + strings.TrimSpace(s.Name),
		Label:    s.Label,
		HelpText: s.HelpText,
		Input:    field.Input{Name: s.Name, Value: value},
		Attrs: map[string]any{
			AttrRequired: s.Required,
		},
	}
	if s.Type != "" {
		props.Attrs[AttrType] = s.Type
	}
	if s.Format != "" {
		props.Attrs[AttrFormat] = s.Format
	}
	if len(s.Options) > 0 {
		props.Attrs[AttrOptions] = append([]Option(nil), s.Options...)
	}
	if rel := s.Relation; rel != nil {
		props.Attrs[AttrTarget] = rel.Target
		if rel.Add {
			props.Add = &field.Relation{Target: rel.Target, Href: rel.AddHref}
		}
		if rel.Edit {
			props.Edit = &field.Relation{Target: rel.Target, Href: rel.EditHref}
		}
	}
	return props
}
