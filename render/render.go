// Package render executes text templates against the name variations of a
// model schema and writes the results to disk.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/shipq/namecase/variations"
)

// TemplateExt is the extension template files must carry.
const TemplateExt = ".tmpl"

// Data is the value templates are executed with.
type Data struct {
	Names  variations.Names
	Schema variations.Schema
	Config variations.Config
}

// NewData builds template data for a schema.
func NewData(s variations.Schema, cfg variations.Config) Data {
	return Data{
		Names:  variations.ModelNameVariations(s),
		Schema: s,
		Config: cfg,
	}
}

// Template is a parsed template file. Name is the file name without the
// .tmpl extension and may contain __field__ placeholders, which are replaced
// by the matching Names field when computing the output path.
type Template struct {
	Name string
	tmpl *template.Template
}

// Parse parses a named template.
func Parse(name, text string) (*Template, error) {
	t, err := template.New(name).Funcs(Funcs()).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return &Template{Name: name, tmpl: t}, nil
}

// Execute renders the template to w.
func (t *Template) Execute(w io.Writer, data Data) error {
	if err := t.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s for %s: %w", t.Name, data.Schema.Model, err)
	}
	return nil
}

// Bytes renders the template into memory.
func (t *Template) Bytes(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// OutputPath returns the path, relative to the output directory, that the
// template renders to for the given names. Placeholders such as
// __snakeCase__ are substituted; a name without placeholders is placed in a
// directory named after the model's snake_case form so that rendering
// several schemas does not collide.
func (t *Template) OutputPath(names variations.Names) string {
	out := t.Name
	for _, f := range names.Fields() {
		out = strings.ReplaceAll(out, "__"+f.Key+"__", f.Value)
	}
	if out == t.Name {
		return filepath.Join(names.SnakeCase, out)
	}
	return filepath.FromSlash(out)
}

// LoadTemplates parses every *.tmpl file in dir, sorted by name.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read template directory: %w", err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != TemplateExt {
			continue
		}
		text, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		t, err := Parse(strings.TrimSuffix(entry.Name(), TemplateExt), string(text))
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}
