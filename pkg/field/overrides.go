package field

import "context"

// overrideChain holds one implementation per overridable behaviour: the
// wrapped field's when it provides one, the shared default otherwise. It is
// resolved once in Decorate.
type overrideChain struct {
	renderLabel    func(props Props, label string) (string, error)
	renderHelpText func(props Props, help string) (string, error)
	renderError    func(props Props, message string) (string, error)
	displayValue   func(props Props, value any) DisplayValue
	onMount        func(ctx context.Context, props Props) error
}

func newOverrideChain(impl Field, chrome Chrome) overrideChain {
	chain := overrideChain{
		renderLabel: func(props Props, label string) (string, error) {
			return chrome.Label(props.ID, label)
		},
		renderHelpText: func(_ Props, help string) (string, error) {
			return chrome.HelpText(help)
		},
		renderError: func(_ Props, message string) (string, error) {
			return chrome.Error(message)
		},
		displayValue: func(_ Props, value any) DisplayValue { return Immediate(value) },
		onMount:      func(context.Context, Props) error { return nil },
	}

	if override, ok := impl.(LabelRenderer); ok {
		chain.renderLabel = override.RenderLabel
	}
	if override, ok := impl.(HelpTextRenderer); ok {
		chain.renderHelpText = override.RenderHelpText
	}
	if override, ok := impl.(ErrorRenderer); ok {
		chain.renderError = override.RenderError
	}
	if override, ok := impl.(DisplayValuer); ok {
		chain.displayValue = override.DisplayValue
	}
	if override, ok := impl.(Mounter); ok {
		chain.onMount = override.OnMount
	}
	return chain
}
