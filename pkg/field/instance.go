package field

import (
	"context"
	"fmt"
)

// Instance is a mounted decorated field. It belongs to a single caller and is
// not safe for concurrent use.
type Instance struct {
	decorated  *Decorated
	props      Props
	mounted    bool
	unregister func()
}

// Mount creates an instance and runs the mount handshake once: the field is
// registered with Props.RegisterFilterField when one is supplied, then the
// wrapped field's own mount hook runs. Props without an ID get a generated
// one so the default label stays associated with the control.
func (d *Decorated) Mount(ctx context.Context, props Props) (*Instance, error) {
	if props.ID == "" {
		props.ID = d.newID()
	}
	instance := &Instance{decorated: d, props: props}
	if err := instance.mount(ctx); err != nil {
		return nil, err
	}
	return instance, nil
}

func (i *Instance) mount(ctx context.Context) error {
	if i.mounted {
		return ErrAlreadyMounted
	}
	i.mounted = true

	if register := i.props.RegisterFilterField; register != nil {
		i.unregister = register(Registration{
			ID:              i.props.ID,
			Name:            i.props.Input.Name,
			GetDisplayValue: i.DisplayValue,
		})
	}

	if err := i.decorated.chain.onMount(ctx, i.props); err != nil {
		i.Unmount()
		return fmt.Errorf("field: mount %s: %w", i.decorated.name, err)
	}
	return nil
}

// Remount runs the mount handshake again after Unmount, creating a fresh
// filter registration.
func (i *Instance) Remount(ctx context.Context) error {
	return i.mount(ctx)
}

// Props returns the current props.
func (i *Instance) Props() Props {
	return i.props
}

// Mounted reports whether the instance is still mounted.
func (i *Instance) Mounted() bool {
	return i.mounted
}

// Update replaces the props used by later renders. The mount handshake does
// not run again and the instance keeps its ID when props carries none.
func (i *Instance) Update(props Props) {
	if props.ID == "" {
		props.ID = i.props.ID
	}
	i.props = props
}

// Render renders the instance with its current props.
func (i *Instance) Render() (string, error) {
	return i.decorated.Render(i.props)
}

// DisplayValue is the accessor handed to the filter registry. It resolves
// against the instance's current props.
func (i *Instance) DisplayValue(value any) DisplayValue {
	return i.decorated.chain.displayValue(i.props, value)
}

// Trigger runs the handler of a relation toolbar action. Actions the
// toolbar does not currently show fail with ErrActionUnavailable. A missing
// handler logs a warning through the configured Diagnostics and returns nil.
func (i *Instance) Trigger(ctx context.Context, action Action) error {
	if !offered(i.props, action) {
		return fmt.Errorf("%w: %s", ErrActionUnavailable, action)
	}

	var handler ActionHandler
	switch action {
	case ActionAdd:
		handler = i.props.OnAdd
	case ActionEdit:
		handler = i.props.OnEdit
	}
	if handler == nil {
		handler = missingHandler(i.decorated.diagnostics, action)
	}
	return handler(ctx, i.props)
}

// Unmount removes the filter registration, if any. Calling it again is a
// no-op.
func (i *Instance) Unmount() {
	if !i.mounted {
		return
	}
	i.mounted = false
	if i.unregister != nil {
		unregister := i.unregister
		i.unregister = nil
		unregister()
	}
}
