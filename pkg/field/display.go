package field

import "context"

// DisplayValue is the human readable form of a field value. It is either
// available immediately or resolved later, for example by looking up the
// title of a related record.
type DisplayValue struct {
	value   any
	resolve func(ctx context.Context) (any, error)
}

// Immediate wraps a value that needs no further resolution.
func Immediate(value any) DisplayValue {
	return DisplayValue{value: value}
}

// Deferred wraps a resolution that runs when Resolve is called. A nil
// function resolves to nil.
func Deferred(resolve func(ctx context.Context) (any, error)) DisplayValue {
	if resolve == nil {
		resolve = func(context.Context) (any, error) { return nil, nil }
	}
	return DisplayValue{resolve: resolve}
}

// IsDeferred reports whether Resolve has work to do.
func (d DisplayValue) IsDeferred() bool {
	return d.resolve != nil
}

// Value returns the immediate value, or nil for deferred display values.
func (d DisplayValue) Value() any {
	return d.value
}

// Resolve returns the display value, running the deferred resolution if
// there is one.
func (d DisplayValue) Resolve(ctx context.Context) (any, error) {
	if d.resolve == nil {
		return d.value, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.resolve(ctx)
}
