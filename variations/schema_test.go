package variations

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestName_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Schema
	}{
		{`{"model": "blog-post", "modelPlural": "blog-posts"}`, Schema{Model: "blog-post", ModelPlural: "blog-posts"}},
		{`{"model": 42, "modelPlural": "blog-posts"}`, Schema{Model: "", ModelPlural: "blog-posts"}},
		{`{"model": null, "modelPlural": true}`, Schema{}},
		{`{"model": ["a"], "modelPlural": {"x": 1}}`, Schema{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var s Schema
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Model != tt.expected.Model || s.ModelPlural != tt.expected.ModelPlural {
				t.Errorf("got (%q, %q), want (%q, %q)", s.Model, s.ModelPlural, tt.expected.Model, tt.expected.ModelPlural)
			}
		})
	}
}

func TestName_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		input    string
		expected Schema
	}{
		{"model: blog-post\nmodelPlural: blog-posts\n", Schema{Model: "blog-post", ModelPlural: "blog-posts"}},
		{"model: 42\nmodelPlural: \"42\"\n", Schema{Model: "", ModelPlural: "42"}},
		{"model: null\nmodelPlural: [a, b]\n", Schema{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var s Schema
			if err := yaml.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Model != tt.expected.Model || s.ModelPlural != tt.expected.ModelPlural {
				t.Errorf("got (%q, %q), want (%q, %q)", s.Model, s.ModelPlural, tt.expected.Model, tt.expected.ModelPlural)
			}
		})
	}
}

func TestSchema_Props(t *testing.T) {
	input := `{"model": "user", "description": "A user", "props": [{"name": "email", "required": true}]}`

	var s Schema
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Description != "A user" {
		t.Errorf("description = %q", s.Description)
	}
	if len(s.Props) != 1 || s.Props[0]["name"] != "email" || s.Props[0]["required"] != true {
		t.Errorf("props = %#v", s.Props)
	}
}

func TestSchema_Normalize(t *testing.T) {
	tests := []struct {
		model    Name
		plural   Name
		expected Name
	}{
		{"blog-post", "", "blog-posts"},
		{"category", "", "categories"},
		{"person", "", "people"},
		{"blog-post", "blog-entries", "blog-entries"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.model), func(t *testing.T) {
			s := Schema{Model: tt.model, ModelPlural: tt.plural}
			s.Normalize()
			if s.ModelPlural != tt.expected {
				t.Errorf("Normalize(%q).ModelPlural = %q, want %q", tt.model, s.ModelPlural, tt.expected)
			}
		})
	}
}

func TestDeriveSingular(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"blog-posts", "blog-post"},
		{"categories", "category"},
		{"people", "person"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DeriveSingular(tt.input); got != tt.expected {
				t.Errorf("DeriveSingular(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
