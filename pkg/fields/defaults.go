package fields

import "github.com/goliatone/go-fieldchrome/pkg/field"

// Defaults configures NewDefaultRegistry.
type Defaults struct {
	// Lookup resolves reference display values. Nil keeps raw ids.
	Lookup LookupFunc
	// SelectPrompt is the empty option rendered by selects.
	SelectPrompt string
}

// NewDefaultRegistry registers the stock kinds. opts apply to every kind,
// e.g. field.WithChrome or field.WithDiagnostics.
func NewDefaultRegistry(defaults Defaults, opts ...field.Option) *field.Registry {
	registry := field.NewRegistry(opts...)
	registry.MustRegister(KindText, Text{})
	registry.MustRegister(KindSelect, Select{Prompt: defaults.SelectPrompt})
	registry.MustRegister(KindCheckbox, Checkbox{})
	registry.MustRegister(KindReference, Reference{Lookup: defaults.Lookup})
	return registry
}
