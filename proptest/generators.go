package proptest

import "strings"

// Charsets for string generation
const (
	CharsetAlpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetAlphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetPrintable  = CharsetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// String returns a random printable ASCII string of length [0, maxLen].
func (g *Generator) String(maxLen int) string {
	return g.StringFrom(CharsetPrintable, maxLen)
}

// StringFrom returns a random string using characters from the given charset,
// with length [0, maxLen].
func (g *Generator) StringFrom(charset string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return g.stringOfLen(charset, g.Intn(maxLen+1))
}

// stringOfLen returns a string of exactly the given length from charset.
func (g *Generator) stringOfLen(charset string, length int) string {
	if length == 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[g.Intn(len(charset))]
	}
	return string(b)
}

// Word returns a lowercase word of length [1, maxLen].
func (g *Generator) Word(maxLen int) string {
	if maxLen <= 0 {
		maxLen = 1
	}
	return g.stringOfLen(CharsetAlphaLower, g.IntRange(1, maxLen))
}

// Words returns between 1 and maxWords lowercase words.
func (g *Generator) Words(maxWords int) []string {
	if maxWords <= 0 {
		maxWords = 1
	}
	return Slice(g, 1, maxWords, func(g *Generator) string { return g.Word(8) })
}

// DashCase returns an identifier like "blog-post-title".
func (g *Generator) DashCase(maxWords int) string {
	return strings.Join(g.Words(maxWords), "-")
}

// SnakeCase returns an identifier like "blog_post_title".
func (g *Generator) SnakeCase(maxWords int) string {
	return strings.Join(g.Words(maxWords), "_")
}

// SpaceCase returns words separated by single spaces.
func (g *Generator) SpaceCase(maxWords int) string {
	return strings.Join(g.Words(maxWords), " ")
}

// PascalCase returns an identifier like "BlogPostTitle".
func (g *Generator) PascalCase(maxWords int) string {
	words := g.Words(maxWords)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, "")
}

// CamelCase returns an identifier like "blogPostTitle".
func (g *Generator) CamelCase(maxWords int) string {
	s := g.PascalCase(maxWords)
	return strings.ToLower(s[:1]) + s[1:]
}

// Identifier returns an identifier in a randomly chosen naming convention.
func (g *Generator) Identifier(maxWords int) string {
	return OneOf(g, g.DashCase, g.SnakeCase, g.SpaceCase, g.PascalCase, g.CamelCase)(maxWords)
}

// EdgeCaseName returns a name that is likely to trigger edge cases in
// word splitting.
func (g *Generator) EdgeCaseName() string {
	edgeCases := []string{
		"",
		" ",
		"  ",
		"-",
		"_",
		"--",
		"-_-",
		"a",
		"A",
		"-leading",
		"trailing_",
		"double--dash",
		"double__underscore",
		"mixed-snake_case",
		"ID",
		"userID",
		"HTTPServer",
		"x1-y2",
		"日本語",
		"émile-zola",
	}
	// 70% chance of edge case, 30% chance of random
	if g.Intn(10) < 7 {
		return edgeCases[g.Intn(len(edgeCases))]
	}
	return g.String(30)
}
