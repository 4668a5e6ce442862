package fields

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-fieldchrome/pkg/field"
	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

func escape(value string) string {
	return html.EscapeString(value)
}

func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`"`)
}

// writeIdentity writes the id and name attributes shared by every control.
func writeIdentity(builder *strings.Builder, props field.Props) {
	if id := strings.TrimSpace(props.ID); id != "" {
		writeAttr(builder, "id", id)
	}
	if name := strings.TrimSpace(props.Input.Name); name != "" {
		writeAttr(builder, "name", name)
	}
	if required(props) {
		builder.WriteString(` required`)
	}
	if described(props) {
		writeAttr(builder, "aria-invalid", "true")
	}
}

func required(props field.Props) bool {
	value, _ := props.Attrs[schema.AttrRequired].(bool)
	return value
}

func described(props field.Props) bool {
	return props.Meta.Touched && strings.TrimSpace(props.Meta.Error) != ""
}

// stringify renders an input value the way it is submitted back.
func stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

func options(props field.Props) []schema.Option {
	opts, _ := props.Attrs[schema.AttrOptions].([]schema.Option)
	return opts
}
