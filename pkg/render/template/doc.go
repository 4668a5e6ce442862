// Package template defines the template seam chrome renderers depend on. The
// pongo2-backed implementation lives in the gotemplate subpackage; hosts can
// supply their own engine as long as it satisfies TemplateRenderer.
package template
