package fields

import (
	"strings"

	"github.com/goliatone/go-fieldchrome/pkg/field"
)

// KindCheckbox renders booleans.
const KindCheckbox = "checkbox"

// Checkbox renders its label inline after the control, so it owns the label
// capability and the decorator does not render one.
type Checkbox struct{}

var (
	_ field.Field            = Checkbox{}
	_ field.ContractDeclarer = Checkbox{}
	_ field.DisplayValuer    = Checkbox{}
)

// Contract implements field.ContractDeclarer.
func (Checkbox) Contract() field.Contract {
	return field.NewContract(string(field.CapabilityLabel))
}

// Render implements field.Field.
func (Checkbox) Render(props field.Props) (string, error) {
	var builder strings.Builder
	builder.WriteString(`<label class="checkbox"><input`)
	writeAttr(&builder, "type", "checkbox")
	writeIdentity(&builder, props)
	writeAttr(&builder, "value", "true")
	if checked(props.Input.Value) {
		builder.WriteString(` checked`)
	}
	builder.WriteString(`>`)
	if label := strings.TrimSpace(props.Label); label != "" {
		builder.WriteString(` `)
		builder.WriteString(escape(label))
	}
	builder.WriteString(`</label>`)
	return builder.String(), nil
}

// DisplayValue renders booleans as Yes or No.
func (Checkbox) DisplayValue(_ field.Props, value any) field.DisplayValue {
	if checked(value) {
		return field.Immediate("Yes")
	}
	return field.Immediate("No")
}

func checked(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "on", "yes", "1":
			return true
		}
	}
	return false
}
