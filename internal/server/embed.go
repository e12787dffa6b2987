package server

import (
	"embed"
	"html/template"
	"io/fs"
)

// webFS holds the landing page template and its static assets
//
//go:embed web
var webFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(webFS, "web/templates/*.html"))
}

func staticFS() fs.FS {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return sub
}
