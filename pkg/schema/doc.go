// Package schema derives field specifications from an OpenAPI component
// schema so decorated fields can be rendered straight from an API contract.
//
// Each property becomes a FieldSpec: the title (or a label derived from the
// property name) becomes the label, the description becomes the help text,
// and enum values become select options. Relation tooling is configured with
// the x-fieldchrome extension:
//
//	author_id:
//	  type: string
//	  x-fieldchrome:
//	    order: 2
//	    relation:
//	      target: authors
//	      add: /authors/new
//	      edit: /authors/edit
//
// Loader reads documents from disk, an fs.FS or HTTP. Lint reports misuse of
// the extension and MapErrors routes a server validation payload back onto
// the fields it belongs to.
package schema
