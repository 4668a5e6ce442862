// Package fields provides the stock field implementations decorated by
// package field: text inputs, selects, checkboxes and references to other
// records. NewDefaultRegistry registers all of them and Resolver picks a
// kind for a schema.FieldSpec.
package fields
