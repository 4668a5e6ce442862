package chrome

import (
	theme "github.com/goliatone/go-theme"
)

// Theme token keys read by ApplyTheme.
const (
	TokenWrapperClass = "fieldchrome.class.wrapper"
	TokenLabelClass   = "fieldchrome.class.label"
	TokenHelpClass    = "fieldchrome.class.help"
	TokenErrorClass   = "fieldchrome.class.error"
	TokenToolsClass   = "fieldchrome.class.tools"
	TokenAddLabel     = "fieldchrome.action.add"
	TokenEditLabel    = "fieldchrome.action.edit"
)

// ApplyTheme overlays a resolved go-theme selection onto cfg. Tokens set class
// names and action labels; partials whose key is a chrome partial replace the
// matching template.
func ApplyTheme(cfg Config, selection *theme.RendererConfig) Config {
	if selection == nil {
		return cfg
	}
	tokens := selection.Tokens
	overlay := Config{
		Classes: Classes{
			Wrapper: tokens[TokenWrapperClass],
			Label:   tokens[TokenLabelClass],
			Help:    tokens[TokenHelpClass],
			Error:   tokens[TokenErrorClass],
			Tools:   tokens[TokenToolsClass],
		},
		Actions: Actions{
			Add:  tokens[TokenAddLabel],
			Edit: tokens[TokenEditLabel],
		},
	}
	for key, value := range selection.Partials {
		if _, known := defaultTemplates[key]; !known {
			continue
		}
		if overlay.Partials == nil {
			overlay.Partials = make(map[string]string)
		}
		overlay.Partials[key] = value
	}
	return cfg.Merge(overlay)
}
