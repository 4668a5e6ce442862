package template

import (
	"io"
)

// TemplateRenderer is the subset of the github.com/goliatone/go-template
// engine contract used to produce chrome markup. Output is returned and,
// when writers are supplied, copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
