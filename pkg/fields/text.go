package fields

import (
	"strings"

	"github.com/goliatone/go-fieldchrome/pkg/field"
	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

// KindText is the fallback kind.
const KindText = "text"

// Text renders a single line input. The input type follows the schema
// format; a "placeholder" attr is passed through.
type Text struct{}

var _ field.Field = Text{}

// Render implements field.Field.
func (Text) Render(props field.Props) (string, error) {
	var builder strings.Builder
	builder.WriteString(`<input`)
	writeAttr(&builder, "type", inputType(props))
	writeIdentity(&builder, props)
	if value := stringify(props.Input.Value); value != "" {
		writeAttr(&builder, "value", value)
	}
	if placeholder := props.StringAttr("placeholder"); placeholder != "" {
		writeAttr(&builder, "placeholder", placeholder)
	}
	builder.WriteString(`>`)
	return builder.String(), nil
}

func inputType(props field.Props) string {
	switch strings.ToLower(props.StringAttr(schema.AttrFormat)) {
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "email":
		return "email"
	case "uri", "url":
		return "url"
	case "password":
		return "password"
	}
	switch strings.ToLower(props.StringAttr(schema.AttrType)) {
	case "integer", "number":
		return "number"
	}
	return "text"
}
