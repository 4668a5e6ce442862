package field

import (
	"slices"
	"strings"
)

// Capability names a chrome element a wrapped field may render itself.
type Capability string

const (
	CapabilityLabel    Capability = "label"
	CapabilityError    Capability = "error"
	CapabilityHelpText Capability = "helpText"
)

// Contract is the immutable set of prop names a field implementation
// consumes. Declaring a capability name in the contract means the field owns
// that chrome element and the decorator will not render it. The zero value
// owns nothing.
type Contract struct {
	props map[string]struct{}
}

// ContractDeclarer is implemented by fields that declare their own contract.
type ContractDeclarer interface {
	Contract() Contract
}

// NewContract builds a contract from prop names. Blank names are ignored.
func NewContract(props ...string) Contract {
	set := make(map[string]struct{}, len(props))
	for _, prop := range props {
		if prop = strings.TrimSpace(prop); prop != "" {
			set[prop] = struct{}{}
		}
	}
	return Contract{props: set}
}

// Owns reports whether the contract claims the capability.
func (c Contract) Owns(capability Capability) bool {
	return c.Has(string(capability))
}

// Has reports whether the contract lists the prop name.
func (c Contract) Has(prop string) bool {
	_, ok := c.props[prop]
	return ok
}

// Props returns the sorted prop names.
func (c Contract) Props() []string {
	names := make([]string, 0, len(c.props))
	for name := range c.props {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Union returns a new contract holding the props of both.
func (c Contract) Union(other Contract) Contract {
	return NewContract(append(c.Props(), other.Props()...)...)
}

// baseContract lists the props every decorated field accepts.
var baseContract = NewContract(
	"id",
	"label",
	"helpText",
	"add",
	"edit",
	"onAdd",
	"onEdit",
	"input",
	"meta",
	"registerFilterField",
	"attrs",
)
