package chrome

// ChromeClass is a typed identifier for the semantic classes chrome emits.
type ChromeClass string

const (
	ClassWrapper ChromeClass = "basefield"
	ClassHelp    ChromeClass = "help"
	ClassError   ChromeClass = "error-message"
	ClassTools   ChromeClass = "field-tools"
)

// Partial keys a theme can use to swap individual chrome templates.
const (
	PartialLabel   = "chrome.label"
	PartialHelp    = "chrome.help"
	PartialError   = "chrome.error"
	PartialToolbar = "chrome.toolbar"
	PartialWrapper = "chrome.wrapper"
)

const templatePrefix = "templates/chrome/"

var defaultTemplates = map[string]string{
	PartialLabel:   templatePrefix + "label.tmpl",
	PartialHelp:    templatePrefix + "help.tmpl",
	PartialError:   templatePrefix + "error.tmpl",
	PartialToolbar: templatePrefix + "toolbar.tmpl",
	PartialWrapper: templatePrefix + "wrapper.tmpl",
}
