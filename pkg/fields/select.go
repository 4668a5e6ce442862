package fields

import (
	"strings"

	"github.com/goliatone/go-fieldchrome/pkg/field"
)

// KindSelect renders a fixed set of options.
const KindSelect = "select"

// Select renders a <select> from the schema.Option list in the "options"
// attr. Its display value is the label of the selected option.
type Select struct {
	// Prompt, when set, is rendered as an empty first option.
	Prompt string
}

var (
	_ field.Field         = Select{}
	_ field.DisplayValuer = Select{}
)

// Render implements field.Field.
func (s Select) Render(props field.Props) (string, error) {
	current := stringify(props.Input.Value)

	var builder strings.Builder
	builder.WriteString(`<select`)
	writeIdentity(&builder, props)
	builder.WriteString(`>`)
	if prompt := strings.TrimSpace(s.Prompt); prompt != "" {
		builder.WriteString(`<option value="">`)
		builder.WriteString(escape(prompt))
		builder.WriteString(`</option>`)
	}
	for _, opt := range options(props) {
		value := stringify(opt.Value)
		builder.WriteString(`<option`)
		writeAttr(&builder, "value", value)
		if value == current && current != "" {
			builder.WriteString(` selected`)
		}
		builder.WriteString(`>`)
		builder.WriteString(escape(optionLabel(opt.Label, value)))
		builder.WriteString(`</option>`)
	}
	builder.WriteString(`</select>`)
	return builder.String(), nil
}

// DisplayValue maps value onto its option label. Unknown values are
// returned unchanged.
func (Select) DisplayValue(props field.Props, value any) field.DisplayValue {
	wanted := stringify(value)
	for _, opt := range options(props) {
		if stringify(opt.Value) == wanted {
			return field.Immediate(optionLabel(opt.Label, wanted))
		}
	}
	return field.Immediate(value)
}

func optionLabel(label, value string) string {
	if label = strings.TrimSpace(label); label != "" {
		return label
	}
	return value
}
