package field

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-fieldchrome/pkg/chrome"
)

var (
	// ErrNilField is returned when Decorate receives no implementation.
	ErrNilField = errors.New("field: wrapped field is nil")
	// ErrActionUnavailable is returned when triggering a toolbar action the
	// current props do not offer.
	ErrActionUnavailable = errors.New("field: action is not available")
	// ErrAlreadyMounted is returned when mounting an instance twice.
	ErrAlreadyMounted = errors.New("field: instance already mounted")
)

// Option configures Decorate.
type Option func(*options)

type options struct {
	name        string
	contract    *Contract
	chrome      Chrome
	diagnostics Diagnostics
	newID       func() string
}

// WithContract declares the props the wrapped field consumes. It takes
// precedence over a ContractDeclarer implementation.
func WithContract(contract Contract) Option {
	return func(o *options) {
		o.contract = &contract
	}
}

// WithChrome sets the renderer used for default chrome markup.
func WithChrome(renderer Chrome) Option {
	return func(o *options) {
		if renderer != nil {
			o.chrome = renderer
		}
	}
}

// WithDiagnostics sets the sink for missing handler warnings.
func WithDiagnostics(diagnostics Diagnostics) Option {
	return func(o *options) {
		if diagnostics != nil {
			o.diagnostics = diagnostics
		}
	}
}

// WithName overrides the decorated type name.
func WithName(name string) Option {
	return func(o *options) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			o.name = trimmed
		}
	}
}

// WithIDGenerator replaces the generator used for instances mounted without
// Props.ID.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// Decorated is a field implementation wrapped with chrome. Capability
// ownership and overrides are resolved once here and shared by every
// instance; a Decorated is safe for concurrent use.
type Decorated struct {
	name        string
	impl        Field
	owned       Contract
	contract    Contract
	chain       overrideChain
	chrome      Chrome
	diagnostics Diagnostics
	newID       func() string
}

// Decorate wraps impl with the shared chrome.
func Decorate(impl Field, opts ...Option) (*Decorated, error) {
	if isNil(impl) {
		return nil, ErrNilField
	}

	cfg := options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.chrome == nil {
		cfg.chrome = chrome.Default()
	}
	if cfg.diagnostics == nil {
		cfg.diagnostics = NewSlogDiagnostics(nil)
	}
	if cfg.newID == nil {
		cfg.newID = func() string { return "fc-" + uuid.NewString() }
	}

	owned := Contract{}
	switch {
	case cfg.contract != nil:
		owned = *cfg.contract
	default:
		if declarer, ok := impl.(ContractDeclarer); ok {
			owned = declarer.Contract()
		}
	}

	name := cfg.name
	if name == "" {
		name = fieldName(impl)
	}

	return &Decorated{
		name:        name,
		impl:        impl,
		owned:       owned,
		contract:    baseContract.Union(owned),
		chain:       newOverrideChain(impl, cfg.chrome),
		chrome:      cfg.chrome,
		diagnostics: cfg.diagnostics,
		newID:       cfg.newID,
	}, nil
}

// MustDecorate mirrors Decorate but panics on error.
func MustDecorate(impl Field, opts ...Option) *Decorated {
	decorated, err := Decorate(impl, opts...)
	if err != nil {
		panic(err)
	}
	return decorated
}

// Name returns the decorated type name.
func (d *Decorated) Name() string {
	return d.name
}

// Contract returns the expanded prop contract: the decorator's own props plus
// those of the wrapped field.
func (d *Decorated) Contract() Contract {
	return d.contract
}

// Owns reports whether the wrapped field renders the capability itself.
func (d *Decorated) Owns(capability Capability) bool {
	return d.owned.Owns(capability)
}

// DisplayValue resolves value through the wrapped field's DisplayValuer, or
// returns it unchanged.
func (d *Decorated) DisplayValue(props Props, value any) DisplayValue {
	return d.chain.displayValue(props, value)
}

// Render produces the field markup: label and relation toolbar, the wrapped
// field's own output, then the error and help text. Chrome the wrapped field
// owns is skipped. Errors from overrides are returned as is, wrapped with
// context.
func (d *Decorated) Render(props Props) (string, error) {
	message := ""
	if props.Meta.Touched {
		message = props.Meta.Error
	}

	parts := make([]string, 0, 5)

	if !d.owned.Owns(CapabilityLabel) {
		label, err := d.chain.renderLabel(props, props.Label)
		if err != nil {
			return "", fmt.Errorf("field: render label for %s: %w", d.name, err)
		}
		parts = append(parts, label)
	}

	toolbar, err := d.chrome.Toolbar(toolbarActions(props)...)
	if err != nil {
		return "", fmt.Errorf("field: render toolbar for %s: %w", d.name, err)
	}
	parts = append(parts, toolbar)

	body, err := d.impl.Render(props)
	if err != nil {
		return "", fmt.Errorf("field: render %s: %w", d.name, err)
	}
	parts = append(parts, body)

	if !d.owned.Owns(CapabilityError) {
		rendered, err := d.chain.renderError(props, message)
		if err != nil {
			return "", fmt.Errorf("field: render error for %s: %w", d.name, err)
		}
		parts = append(parts, rendered)
	}

	if !d.owned.Owns(CapabilityHelpText) {
		help, err := d.chain.renderHelpText(props, props.HelpText)
		if err != nil {
			return "", fmt.Errorf("field: render help text for %s: %w", d.name, err)
		}
		parts = append(parts, help)
	}

	return d.chrome.Wrap(d.name, parts...)
}

func fieldName(impl Field) string {
	if namer, ok := impl.(Namer); ok {
		if name := strings.TrimSpace(namer.Name()); name != "" {
			return name
		}
	}
	t := reflect.TypeOf(impl)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "field"
	}
	return strings.ToLower(t.Name())
}

func isNil(impl Field) bool {
	if impl == nil {
		return true
	}
	rv := reflect.ValueOf(impl)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
