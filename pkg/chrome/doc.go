// Package chrome renders the markup that surrounds a field control: the
// label, help text, validation error, relation toolbar and the wrapper that
// holds them together.
//
// Markup comes from pongo2 templates embedded under templates/chrome. Class
// names and action labels are configurable through Config, which can be
// loaded from YAML or overlaid from a go-theme RendererConfig. Theme partials
// replace individual templates without touching the rest of the bundle.
//
//	renderer, err := chrome.New(
//		chrome.WithConfig(cfg),
//		chrome.WithTheme(selection),
//	)
package chrome
