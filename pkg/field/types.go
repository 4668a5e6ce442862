package field

import (
	"context"
	"strings"
)

// Input is the value slot owned by the form container.
type Input struct {
	Name  string
	Value any
}

// Meta carries validation status owned by the form container.
type Meta struct {
	Touched bool
	Error   string
}

// Relation configures an Add or Edit affordance for fields that reference
// another record. A nil *Relation disables the affordance.
type Relation struct {
	// Target names the related resource, e.g. "authors".
	Target string
	// Href, when set, is rendered on the toolbar anchor.
	Href string
}

// Action identifies a relation toolbar entry.
type Action string

const (
	ActionAdd  Action = "add"
	ActionEdit Action = "edit"
)

// ActionHandler opens the add or edit view for a relation.
type ActionHandler func(ctx context.Context, props Props) error

// Registration is handed to the filter registry when a decorated field
// mounts. GetDisplayValue stays valid for the lifetime of the instance.
type Registration struct {
	ID              string
	Name            string
	GetDisplayValue func(value any) DisplayValue
}

// RegisterFunc registers a field with a filter registry. The returned
// function, when non-nil, removes the registration and is called on unmount.
type RegisterFunc func(Registration) (unregister func())

// Props is the runtime input of a decorated field.
type Props struct {
	ID       string
	Label    string
	HelpText string

	Add    *Relation
	Edit   *Relation
	OnAdd  ActionHandler
	OnEdit ActionHandler

	Input Input
	Meta  Meta

	RegisterFilterField RegisterFunc

	// Attrs carries field specific props such as select options.
	Attrs map[string]any
}

// Attr returns a field specific prop.
func (p Props) Attr(key string) (any, bool) {
	value, ok := p.Attrs[key]
	return value, ok
}

// StringAttr returns a field specific prop as a trimmed string, or "" when
// it is missing or not a string.
func (p Props) StringAttr(key string) string {
	value, _ := p.Attrs[key].(string)
	return strings.TrimSpace(value)
}
