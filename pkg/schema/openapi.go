package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ExtensionKey is the vendor extension read from schema properties.
const ExtensionKey = "x-fieldchrome"

// LoadOpenAPI parses an OpenAPI 3 document (JSON or YAML) and returns one
// FieldSpec per property of the named component schema. Specs are ordered by
// the x-fieldchrome order hint, then by name.
func LoadOpenAPI(ctx context.Context, data []byte, schemaName string) ([]FieldSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("schema: document has no component schemas")
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: component schema %q not found", schemaName)
	}
	return convertObject(ref.Value), nil
}

func convertObject(object *openapi3.Schema) []FieldSpec {
	required := make(map[string]struct{}, len(object.Required))
	for _, name := range object.Required {
		required[name] = struct{}{}
	}

	specs := make([]FieldSpec, 0, len(object.Properties))
	for name, property := range object.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		_, isRequired := required[name]
		specs = append(specs, convertProperty(name, property.Value, isRequired))
	}

	sort.SliceStable(specs, func(i, j int) bool {
		if specs[i].Order == specs[j].Order {
			return specs[i].Name < specs[j].Name
		}
		return specs[i].Order < specs[j].Order
	})
	return specs
}

func convertProperty(name string, property *openapi3.Schema, required bool) FieldSpec {
	ext := extension(property.Extensions)

	spec := FieldSpec{
		Name:     name,
		Label:    strings.TrimSpace(property.Title),
		HelpText: strings.TrimSpace(property.Description),
		Type:     firstType(property.Type),
		Format:   property.Format,
		Required: required,
		Order:    intValue(ext["order"]),
		Kind:     stringValue(ext["kind"]),
		Relation: relationSpec(ext["relation"]),
	}
	if spec.Label == "" {
		spec.Label = Label(name)
	}
	if help := stringValue(ext["help_text"]); help != "" {
		spec.HelpText = help
	}

	labels, _ := ext["option_labels"].(map[string]any)
	for _, value := range property.Enum {
		key := fmt.Sprint(value)
		label := stringValue(labels[key])
		if label == "" {
			label = Label(key)
		}
		spec.Options = append(spec.Options, Option{Value: value, Label: label})
	}
	return spec
}

func relationSpec(raw any) *RelationSpec {
	switch value := raw.(type) {
	case string:
		if target := strings.TrimSpace(value); target != "" {
			return &RelationSpec{Target: target, Add: true, Edit: true}
		}
	case map[string]any:
		target := stringValue(value["target"])
		if target == "" {
			return nil
		}
		rel := &RelationSpec{Target: target}
		rel.Add, rel.AddHref = toggle(value["add"])
		rel.Edit, rel.EditHref = toggle(value["edit"])
		return rel
	}
	return nil
}

// toggle reads an action setting: a bool enables or disables it, a string
// enables it with that href, and an absent value enables it.
func toggle(raw any) (bool, string) {
	switch value := raw.(type) {
	case nil:
		return true, ""
	case bool:
		return value, ""
	case string:
		return true, strings.TrimSpace(value)
	default:
		return false, ""
	}
}

func extension(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	ext, _ := raw[ExtensionKey].(map[string]any)
	return ext
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func stringValue(raw any) string {
	value, _ := raw.(string)
	return strings.TrimSpace(value)
}

func intValue(raw any) int {
	switch value := raw.(type) {
	case float64:
		return int(value)
	case int:
		return value
	case int64:
		return int(value)
	default:
		return 0
	}
}
