package variations

import (
	"encoding/json"

	"github.com/jinzhu/inflection"
	"gopkg.in/yaml.v3"
)

// Schema describes a model for code generation.
type Schema struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Model       Name   `json:"model" yaml:"model" toml:"model"`
	ModelPlural Name   `json:"modelPlural" yaml:"modelPlural" toml:"modelPlural"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Props       []Prop `json:"props,omitempty" yaml:"props,omitempty" toml:"props,omitempty"`
}

// Prop is an open set of attributes describing one model property.
type Prop map[string]any

// Config is the application context a schema is generated into.
type Config struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Application string `json:"application"`
	Scope       string `json:"scope"`
}

// Name is a model name as read from a schema document. Decoding never fails
// on the value's type: anything other than a string decodes to "".
type Name string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Name) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*n = ""
		return nil
	}
	*n = Name(s)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Name) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		*n = ""
		return nil
	}
	*n = Name(value.Value)
	return nil
}

// Normalize fills ModelPlural from Model when it is missing.
func (s *Schema) Normalize() {
	if s.ModelPlural == "" && s.Model != "" {
		s.ModelPlural = Name(DerivePlural(string(s.Model)))
	}
}

// DerivePlural returns the English plural of a model name. Delimiters are
// kept; only the last word is inflected.
// Examples:
//
//	"blog-post" -> "blog-posts"
//	"category" -> "categories"
//	"person" -> "people"
func DerivePlural(singular string) string {
	if singular == "" {
		return ""
	}
	return inflection.Plural(singular)
}

// DeriveSingular is the inverse of DerivePlural.
func DeriveSingular(plural string) string {
	if plural == "" {
		return ""
	}
	return inflection.Singular(plural)
}
