package casing

import "sort"

var (
	// Strip turns dashes and underscores into spaces.
	Strip = Pipe(StripDashes, StripUnderscores)

	// Titlelize produces space-separated Title Case.
	//
	//	"blog-post_title" -> "Blog Post Title"
	Titlelize = Pipe(Strip, CapitalizeWords)

	// Labelize produces PascalCase.
	//
	//	"blog-post" -> "BlogPost"
	Labelize = Pipe(Titlelize, RemoveSpaces)

	// Placeholderize produces a human-readable label, splitting camel
	// boundaries as well as delimiters.
	//
	//	"createdAt" -> "Created At"
	Placeholderize = Pipe(Titlelize, SpaceWords)

	// Camelize produces camelCase.
	//
	//	"blog-post" -> "blogPost"
	Camelize = Pipe(Labelize, Decapitalize)

	// SnakeCaselize produces snake_case from dash or underscore input. Camel
	// boundaries are not split: "MyWidget-Name" -> "mywidget_name".
	SnakeCaselize = Pipe(Strip, SnakeCaseTitle)

	// WordSnakeCaselize is SnakeCaselize that also splits camel boundaries.
	//
	//	"MyWidget-Name" -> "my_widget_name"
	WordSnakeCaselize = Pipe(SpaceWords, Strip, SnakeCaseTitle)
)

var registry = map[string]Transform{
	"stripDashes":       StripDashes,
	"stripUnderscores":  StripUnderscores,
	"spaceWords":        SpaceWords,
	"capitalizeWords":   CapitalizeWords,
	"removeSpaces":      RemoveSpaces,
	"capitalize":        Capitalize,
	"decapitalize":      Decapitalize,
	"dashTitle":         DashTitle,
	"underscoreTitle":   UnderscoreTitle,
	"spaceTitle":        SpaceTitle,
	"dashCamelTitle":    DashCamelTitle,
	"snakeCaseTitle":    SnakeCaseTitle,
	"strip":             Strip,
	"titlelize":         Titlelize,
	"labelize":          Labelize,
	"placeholderize":    Placeholderize,
	"camelize":          Camelize,
	"snakeCaselize":     SnakeCaselize,
	"wordSnakeCaselize": WordSnakeCaselize,
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Transform, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns the registered transform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
