// Package web содержит HTML-шаблоны страницы портфолио.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strconv"
	"strings"
)

//go:embed templates/*.tmpl
var FS embed.FS

// Templates разбирает встроенные шаблоны.
func Templates() (*template.Template, error) {
	sub, err := fs.Sub(FS, "templates")
	if err != nil {
		return nil, err
	}
	return template.New("").Funcs(Funcs()).ParseFS(sub, "*.tmpl")
}

// Funcs возвращает функции, доступные в шаблонах.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"percent": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64) + "%"
		},
	}
}
