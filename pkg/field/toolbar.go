package field

import (
	"math"
	"reflect"

	"github.com/goliatone/go-fieldchrome/pkg/chrome"
)

// offered reports whether the toolbar currently shows action. Edit needs an
// existing value to edit.
func offered(props Props, action Action) bool {
	switch action {
	case ActionAdd:
		return props.Add != nil
	case ActionEdit:
		return props.Edit != nil && truthy(props.Input.Value)
	default:
		return false
	}
}

func toolbarActions(props Props) []chrome.Action {
	var actions []chrome.Action
	if offered(props, ActionAdd) {
		actions = append(actions, chrome.Action{Name: string(ActionAdd), Href: props.Add.Href})
	}
	if offered(props, ActionEdit) {
		actions = append(actions, chrome.Action{Name: string(ActionEdit), Href: props.Edit.Href})
	}
	return actions
}

// truthy treats Go zero values, NaN, nil references and empty collections
// as "no value".
func truthy(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	default:
		return !rv.IsZero()
	}
}
