// Package renderer turns finpredictor values into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/finpredictor"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"money": money,
}

// money formats an amount in the default currency when it has none.
func money(v any) string {
	switch v := v.(type) {
	case finpredictor.Money:
		if v.Currency() == "" {
			return finpredictor.M(v.Float(), finpredictor.DefaultCurrency).String()
		}
		return v.String()
	case float64:
		return finpredictor.M(v, finpredictor.DefaultCurrency).String()
	case int:
		return finpredictor.M(v, finpredictor.DefaultCurrency).String()
	}
	return fmt.Sprint(v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
// Partials are aliased by name; an empty file name is an empty partial.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
