package scaffold

import (
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProjectData holds all template variables available to library templates.
type ProjectData struct {
	Name        string // verbatim, e.g. "my_lib2"
	ModuleName  string // constant form, e.g. "MyLib2"
	PackageName string // identifier form, e.g. "my_lib2"; "my-lib" becomes "mylib"
}

// NewProjectData creates a ProjectData with derived fields populated.
func NewProjectData(name string) *ProjectData {
	return &ProjectData{
		Name:        name,
		ModuleName:  Camelize(name),
		PackageName: identifier(name),
	}
}

// Camelize joins the words of name into an upper camel case constant name.
// Underscores, dashes, dots and spaces separate words; other punctuation is
// dropped. Existing capitals are kept, so "myLib" becomes "MyLib". A name with
// no letters or digits is returned unchanged.
func Camelize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})

	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		for _, r := range title.String(w) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// identifier lowercases name and keeps letters, digits and underscores. Like
// Camelize, it falls back to the verbatim name when nothing is left.
func identifier(name string) string {
	lower := cases.Lower(language.Und).String(name)
	var b strings.Builder
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// templateFuncs returns the function map available to library templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"camelize": Camelize,
		"toLower":  strings.ToLower,
		"toUpper":  strings.ToUpper,
	}
}
