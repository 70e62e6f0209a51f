package casing

// Delimiter separates words within a compound identifier.
type Delimiter string

const (
	Dash       Delimiter = "-"
	Underscore Delimiter = "_"
	Space      Delimiter = " "
)

// TitleCase returns a Transform that splits on d and concatenates the
// capitalized words.
//
//	TitleCase(Dash)("blog-post") -> "BlogPost"
func TitleCase(d Delimiter) Transform {
	return func(s string) string {
		return SpecialChars(s, d)
	}
}

// CamelCase is TitleCase with the first character lowercased.
//
//	CamelCase(Dash)("blog-post") -> "blogPost"
func CamelCase(d Delimiter) Transform {
	return func(s string) string {
		return Decapitalize(SpecialChars(s, d))
	}
}

// SnakeCase returns a Transform that splits on d, joins the words with "_"
// and lowercases the whole result, whatever the input case.
//
//	SnakeCase(Space)("Blog Post") -> "blog_post"
func SnakeCase(d Delimiter) Transform {
	return func(s string) string {
		return lowerASCII(SpecialCharsCustomJoin(s, d, "_"))
	}
}

var (
	DashTitle       = TitleCase(Dash)
	UnderscoreTitle = TitleCase(Underscore)
	SpaceTitle      = TitleCase(Space)
	DashCamelTitle  = CamelCase(Dash)
	SnakeCaseTitle  = SnakeCase(Space)
)
