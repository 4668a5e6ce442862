package chrome

import (
	"embed"
	"io/fs"
)

//go:embed templates/chrome/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded chrome template bundle. Hosts overriding a
// single partial usually layer their own fs.FS over this one.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
