// Package field decorates minimal field implementations with shared chrome.
//
// A field only has to render its editing control. Decorate wraps it and adds
// a label, the relation toolbar, the validation error and the help text, in
// that order around the control. The field opts out of any chrome element it
// renders itself by declaring the prop in its Contract, and customises any
// default behaviour by implementing the matching optional interface
// (LabelRenderer, HelpTextRenderer, ErrorRenderer, DisplayValuer, Mounter).
//
// Mounting a decorated field hands its display-value resolver to a filter
// registry when the ancestor form supplies Props.RegisterFilterField:
//
//	decorated, err := field.Decorate(fields.Select{})
//	instance, err := decorated.Mount(ctx, field.Props{
//		Label:               "Status",
//		Input:               field.Input{Name: "status", Value: "draft"},
//		RegisterFilterField: filters.Register,
//	})
//	defer instance.Unmount()
//	html, err := instance.Render()
package field
