package chrome

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	rendertemplate "github.com/goliatone/go-fieldchrome/pkg/render/template"
	"github.com/goliatone/go-fieldchrome/pkg/render/template/gotemplate"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	chrome     Config
	theme      *theme.RendererConfig
	templateFS fs.FS
	templates  rendertemplate.TemplateRenderer
}

// WithConfig replaces the default chrome configuration.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		c.chrome = cfg
	}
}

// WithTheme overlays a go-theme selection on top of the configuration.
func WithTheme(selection *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = selection
	}
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(c *config) {
		if files != nil {
			c.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template engine. It takes precedence
// over WithTemplatesFS.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(c *config) {
		if renderer != nil {
			c.templates = renderer
		}
	}
}

// Action is a single relation toolbar entry.
type Action struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Renderer produces chrome markup. It is safe for concurrent use once built.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	cfg       Config
}

// New constructs a Renderer backed by the embedded templates unless a custom
// template bundle or engine is supplied. Config.Engine picks the engine built
// over the bundle. The configured classes are seeded into the engine's
// global context as "classes", so one engine should back one Renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		chrome:     DefaultConfig(),
		templateFS: TemplatesFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	effective := ApplyTheme(cfg.chrome, cfg.theme)

	templates := cfg.templates
	if templates == nil {
		engine, err := newEngine(effective, cfg.templateFS)
		if err != nil {
			return nil, fmt.Errorf("chrome: configure template renderer: %w", err)
		}
		templates = engine
	} else if err := templates.GlobalContext(effective.globals()); err != nil {
		return nil, fmt.Errorf("chrome: seed template globals: %w", err)
	}

	return &Renderer{
		templates: templates,
		cfg:       effective,
	}, nil
}

func newEngine(cfg Config, files fs.FS) (rendertemplate.TemplateRenderer, error) {
	opts := []gotemplate.Option{
		gotemplate.WithFS(files),
		gotemplate.WithExtension(".tmpl"),
		gotemplate.WithGlobalData(cfg.globals()),
	}
	switch name := strings.ToLower(strings.TrimSpace(cfg.Engine)); name {
	case "", EnginePongo2:
		engine, err := gotemplate.New(opts...)
		if err != nil {
			return nil, err
		}
		return engine, nil
	case EngineGoTemplate:
		engine, err := gotemplate.NewGoTemplate(opts...)
		if err != nil {
			return nil, err
		}
		return engine, nil
	default:
		return nil, fmt.Errorf("unknown template engine %q", name)
	}
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns a shared Renderer using the embedded templates and
// DefaultConfig. It panics if the embedded bundle cannot be loaded.
func Default() *Renderer {
	defaultOnce.Do(func() {
		renderer, err := New()
		if err != nil {
			panic(err)
		}
		defaultRenderer = renderer
	})
	return defaultRenderer
}

// Config returns the effective configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Label renders a label associated with the control id. Only the empty
// string renders nothing; whitespace is kept as label text.
func (r *Renderer) Label(id, label string) (string, error) {
	if label == "" {
		return "", nil
	}
	return r.render(PartialLabel, map[string]any{
		"id":    id,
		"label": label,
	})
}

// HelpText renders the help paragraph. Empty text renders nothing.
func (r *Renderer) HelpText(help string) (string, error) {
	if help == "" {
		return "", nil
	}
	markup := r.cfg.HelpMarkup
	if markup {
		help = SanitizeHelp(help)
	}
	return r.render(PartialHelp, map[string]any{
		"help":   help,
		"markup": markup,
	})
}

// Error renders a validation message. Empty messages render nothing.
func (r *Renderer) Error(message string) (string, error) {
	if message == "" {
		return "", nil
	}
	return r.render(PartialError, map[string]any{
		"error": message,
	})
}

// Toolbar renders the relation action list. Actions without a label take the
// configured text for their name. No actions renders nothing.
func (r *Renderer) Toolbar(actions ...Action) (string, error) {
	if len(actions) == 0 {
		return "", nil
	}
	items := make([]Action, 0, len(actions))
	for _, action := range actions {
		if action.Label == "" {
			action.Label = r.actionLabel(action.Name)
		}
		items = append(items, action)
	}
	return r.render(PartialToolbar, map[string]any{
		"actions": items,
	})
}

// Wrap joins the non-empty parts inside the field wrapper. kind is emitted
// as data-field when set.
func (r *Renderer) Wrap(kind string, parts ...string) (string, error) {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kept = append(kept, part)
	}
	return r.render(PartialWrapper, map[string]any{
		"kind":  kind,
		"parts": kept,
	})
}

func (r *Renderer) actionLabel(name string) string {
	switch name {
	case "add":
		return r.cfg.Actions.Add
	case "edit":
		return r.cfg.Actions.Edit
	default:
		return name
	}
}

func (r *Renderer) render(partial string, data map[string]any) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("chrome: template renderer not configured")
	}
	name := r.cfg.template(partial)
	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("chrome: render %s: %w", partial, err)
	}
	return out, nil
}
