// Package web embeds the dashboard page template.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var FS embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(FS, "templates/*.tmpl"))
}
