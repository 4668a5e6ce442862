// Package filter is an in-memory filter registry for decorated fields. Filter
// forms pass Registry.Register as Props.RegisterFilterField; the registry then
// turns the raw filter values of a request into human readable summary
// entries, resolving deferred display values concurrently.
package filter
