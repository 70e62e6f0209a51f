package render

import (
	"text/template"

	"github.com/shipq/namecase/casing"
	"github.com/shipq/namecase/variations"
)

// Funcs returns the template functions available to every template: one per
// registered casing transform plus plural, singular and variations.
//
// Arguments are taken as any and pass through casing.Text, so a template
// that feeds a non-string value (a number from props, a missing map key)
// gets "" back instead of a render error.
func Funcs() template.FuncMap {
	fm := template.FuncMap{
		"plural": func(v any) string {
			return variations.DerivePlural(casing.Text(v))
		},
		"singular": func(v any) string {
			return variations.DeriveSingular(casing.Text(v))
		},
		"variations": func(singular, plural any) variations.Names {
			return variations.Expand(casing.Text(singular), casing.Text(plural))
		},
	}
	for _, name := range casing.Names() {
		fn, _ := casing.Lookup(name)
		fm[name] = func(v any) string {
			return fn(casing.Text(v))
		}
	}
	return fm
}
