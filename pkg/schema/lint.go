package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Violation is a misuse of the x-fieldchrome extension.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

var extensionKeys = []string{"help_text", "kind", "option_labels", "order", "relation"}

// Lint reports unknown x-fieldchrome keys and malformed values across every
// component schema of an OpenAPI document. Violations are sorted by
// location.
func Lint(ctx context.Context, data []byte) ([]Violation, error) {
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
	if doc.Components == nil {
		return nil, nil
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var result []Violation
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		result = append(result, lintSchema([]string{"components", name}, ref.Value, 0)...)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Location == result[j].Location {
			return result[i].Message < result[j].Message
		}
		return result[i].Location < result[j].Location
	})
	return result, nil
}

// maxLintDepth bounds recursion through self referencing schemas.
const maxLintDepth = 16

func lintSchema(path []string, schema *openapi3.Schema, depth int) []Violation {
	if schema == nil || depth > maxLintDepth {
		return nil
	}
	result := lintExtension(path, schema.Extensions)

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if property := schema.Properties[key]; property != nil {
			result = append(result, lintSchema(appendPath(path, "properties."+key), property.Value, depth+1)...)
		}
	}
	if schema.Items != nil {
		result = append(result, lintSchema(appendPath(path, "items"), schema.Items.Value, depth+1)...)
	}
	return result
}

func lintExtension(path []string, extensions map[string]any) []Violation {
	raw, ok := extensions[ExtensionKey]
	if !ok {
		return nil
	}
	nested, ok := raw.(map[string]any)
	if !ok {
		return []Violation{violation(path, "%s must be an object, found %T", ExtensionKey, raw)}
	}

	keys := make([]string, 0, len(nested))
	for key := range nested {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result []Violation
	for _, key := range keys {
		location := appendPath(path, key)
		if message := validateHint(key, nested[key]); message != "" {
			result = append(result, violation(location, "%s", message))
		}
	}
	return result
}

func validateHint(key string, value any) string {
	switch key {
	case "order":
		switch value.(type) {
		case float64, int, int64:
			return ""
		}
		return fmt.Sprintf("order must be a number (got %T)", value)
	case "kind", "help_text":
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s must be a string (got %T)", key, value)
		}
	case "option_labels":
		labels, ok := value.(map[string]any)
		if !ok {
			return fmt.Sprintf("option_labels must be an object (got %T)", value)
		}
		for option, label := range labels {
			if _, ok := label.(string); !ok {
				return fmt.Sprintf("option_labels.%s must be a string (got %T)", option, label)
			}
		}
	case "relation":
		return validateRelation(value)
	default:
		return fmt.Sprintf("unsupported extension key %q (supported: %s)", key, strings.Join(extensionKeys, ", "))
	}
	return ""
}

func validateRelation(value any) string {
	switch typed := value.(type) {
	case string:
		if strings.TrimSpace(typed) == "" {
			return "relation target is empty"
		}
		return ""
	case map[string]any:
		if stringValue(typed["target"]) == "" {
			return "relation.target must be a non-empty string"
		}
		for _, action := range []string{"add", "edit"} {
			switch typed[action].(type) {
			case nil, bool, string:
			default:
				return fmt.Sprintf("relation.%s must be a boolean or an href (got %T)", action, typed[action])
			}
		}
		return ""
	default:
		return fmt.Sprintf("relation must be a target name or an object (got %T)", value)
	}
}

func violation(path []string, format string, args ...any) Violation {
	return Violation{Location: strings.Join(path, " > "), Message: fmt.Sprintf(format, args...)}
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}
