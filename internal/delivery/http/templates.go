package http

import (
	"embed"
	"html/template"
	"io/fs"
	"unicode"
	"unicode/utf8"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//go:embed static
var staticRoot embed.FS

var templateFuncs = template.FuncMap{
	"title": upperFirst,
}

// upperFirst upper-cases the first rune of s
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// mustParseTemplates parses every embedded page template
func mustParseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.tmpl"))
}

// staticFiles returns the embedded static assets rooted at /static
func staticFiles() fs.FS {
	sub, err := fs.Sub(staticRoot, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
