// Package variations expands a singular/plural model name pair into the
// family of names a code generator prints in different syntactic contexts:
// type names, variable names, file names and parameter declarations.
package variations

import "github.com/shipq/namecase/casing"

// Names is the set of eight names derived from a model name pair.
type Names struct {
	Obj         string `json:"obj" yaml:"obj"`
	Objs        string `json:"objs" yaml:"objs"`
	Model       string `json:"model" yaml:"model"`
	Models      string `json:"models" yaml:"models"`
	SnakeCase   string `json:"snakeCase" yaml:"snakeCase"`
	SnakeCases  string `json:"snakeCases" yaml:"snakeCases"`
	ModelParam  string `json:"modelParam" yaml:"modelParam"`
	ModelsParam string `json:"modelsParam" yaml:"modelsParam"`
}

// Field is a single named entry of a Names value.
type Field struct {
	Key   string
	Value string
}

// Fields returns the names in declaration order, keyed like their JSON form.
func (n Names) Fields() []Field {
	return []Field{
		{"obj", n.Obj},
		{"objs", n.Objs},
		{"model", n.Model},
		{"models", n.Models},
		{"snakeCase", n.SnakeCase},
		{"snakeCases", n.SnakeCases},
		{"modelParam", n.ModelParam},
		{"modelsParam", n.ModelsParam},
	}
}

// Expand derives the Names for a singular and plural model name.
// Examples:
//
//	("blog-post", "blog-posts") ->
//	  Obj: "blogPost", Objs: "blogPosts"
//	  Model: "BlogPost", Models: "BlogPosts"
//	  SnakeCase: "blog_post", SnakeCases: "blog_posts"
//	  ModelParam: "blogPost: BlogPost", ModelsParam: "blogPosts: BlogPost[]"
//
// There is no error path: empty or malformed input yields degenerate names.
func Expand(singular, plural string) Names {
	obj := casing.DashCamelTitle(singular)
	objs := casing.DashCamelTitle(plural)

	// Model is re-titled from obj rather than from the raw input so that any
	// dash left in obj is folded the same way.
	model := casing.DashTitle(obj)
	models := casing.DashTitle(objs)

	return Names{
		Obj:        obj,
		Objs:       objs,
		Model:      model,
		Models:     models,
		SnakeCase:  casing.SnakeCaselize(singular),
		SnakeCases: casing.SnakeCaselize(plural),
		// The plural parameter is typed as a list of the singular model.
		ModelParam:  obj + ": " + model,
		ModelsParam: objs + ": " + model + "[]",
	}
}

// ModelNameVariations expands the schema's model name pair. The plural is
// used as given; call Schema.Normalize first to derive a missing one.
func ModelNameVariations(s Schema) Names {
	return Expand(string(s.Model), string(s.ModelPlural))
}
