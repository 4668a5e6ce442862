package field

import (
	"context"

	"github.com/goliatone/go-fieldchrome/pkg/chrome"
)

// Field renders the editing control of a single value. It is the only
// behaviour a wrapped implementation must provide.
type Field interface {
	Render(props Props) (string, error)
}

// LabelRenderer replaces the default label markup.
type LabelRenderer interface {
	RenderLabel(props Props, label string) (string, error)
}

// HelpTextRenderer replaces the default help text markup.
type HelpTextRenderer interface {
	RenderHelpText(props Props, help string) (string, error)
}

// ErrorRenderer replaces the default validation error markup.
type ErrorRenderer interface {
	RenderError(props Props, message string) (string, error)
}

// DisplayValuer replaces the identity display value. props are the
// instance's current props, e.g. to map a value onto its option label.
type DisplayValuer interface {
	DisplayValue(props Props, value any) DisplayValue
}

// Mounter runs setup when an instance of the field mounts.
type Mounter interface {
	OnMount(ctx context.Context, props Props) error
}

// Namer lets a field choose the name used for its decorated type.
type Namer interface {
	Name() string
}

// Chrome renders the default chrome markup. *chrome.Renderer satisfies it.
type Chrome interface {
	Label(id, label string) (string, error)
	HelpText(help string) (string, error)
	Error(message string) (string, error)
	Toolbar(actions ...chrome.Action) (string, error)
	Wrap(kind string, parts ...string) (string, error)
}

var _ Chrome = (*chrome.Renderer)(nil)

// FieldFunc adapts a render function to Field. It owns no chrome and
// overrides nothing.
type FieldFunc func(props Props) (string, error)

// Render calls f.
func (f FieldFunc) Render(props Props) (string, error) {
	return f(props)
}
