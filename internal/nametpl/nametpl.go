// Package nametpl compiles and renders filename templates.
//
// Templates use text/template syntax over the flat metadata context, so
// {{.v.width}} reads the preferred video stream's width and {{.ct}} the
// normalized creation time. Rendering is strict: a key the context does not
// carry fails the render instead of silently emitting "<no value>", and an
// empty result is rejected because renaming a file to "" can never be
// intended.
package nametpl

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"

	"metamv/internal/language"
	"metamv/internal/metadata"
	"metamv/internal/textutil"
)

// Template is a compiled filename template, safe to reuse across files.
type Template struct {
	text string
	tpl  *template.Template
}

// funcs are the helpers templates may call. None of them fire unless the
// template asks, so a template without calls sees raw metadata only.
var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"title": func(s string) string {
		return cases.Title(xlanguage.Und).String(s)
	},
	"trim":     strings.TrimSpace,
	"sanitize": textutil.SanitizeFileName,
	"token":    textutil.SanitizeToken,
	"lang":     language.DisplayName,
	"iso2":     language.ToISO2,
	"iso3":     language.ToISO3,
}

// Compile parses the template text once. Missing context keys become render
// errors rather than placeholder text.
func Compile(text string) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("template text is empty")
	}
	tpl, err := template.New("filename").Option("missingkey=error").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{text: text, tpl: tpl}, nil
}

// Render executes the template against one file's context and returns the
// new filename.
func (t *Template) Render(ctx metadata.Context) (string, error) {
	var buf strings.Builder
	if err := t.tpl.Execute(&buf, map[string]any(ctx)); err != nil {
		return "", err
	}
	name := buf.String()
	if strings.TrimSpace(name) == "" {
		return "", errors.New("template rendered an empty filename")
	}
	return name, nil
}

// Text returns the source text the template was compiled from.
func (t *Template) Text() string {
	return t.text
}
