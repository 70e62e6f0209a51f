// Package casing provides string transforms for converting identifiers
// between naming conventions (dash-case, snake_case, spaced words,
// camelCase, PascalCase).
//
// The package is built in layers. Primitive transforms each do one thing,
// Pipe composes them left to right, converters bind a delimiter, and the
// named pipelines combine both into end-to-end conversions:
//
//	casing.Labelize("blog-post")      // "BlogPost"
//	casing.Camelize("blog_post")      // "blogPost"
//	casing.SnakeCaselize("blog-post") // "blog_post"
//
// Every transform is pure and total: it never panics and never mutates
// shared state, so all of them are safe for concurrent use. Case rules are
// ASCII only.
package casing

import (
	"reflect"
	"regexp"
	"strings"
)

// Transform is a pure string-to-string function.
type Transform func(string) string

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// StripDashes replaces every "-" with a space.
func StripDashes(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// StripUnderscores replaces every "_" with a space.
func StripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// SpaceWords inserts a space at every lower-to-upper case boundary.
// Examples:
//
//	"blogPost" -> "blog Post"
//	"HTTPServer" -> "HTTPServer"
func SpaceWords(s string) string {
	return camelBoundary.ReplaceAllString(s, "$1 $2")
}

// CapitalizeWords capitalizes each space-separated word. Runs of spaces are
// preserved because empty words survive the split.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// RemoveSpaces joins space-separated words with no separator.
func RemoveSpaces(s string) string {
	return strings.Join(strings.Split(s, " "), "")
}

// Capitalize uppercases the first character and leaves the rest unchanged.
// Examples:
//
//	"user" -> "User"
//	"userID" -> "UserID"
//	"" -> ""
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	b[0] = toUpper(b[0])
	return string(b)
}

// Decapitalize lowercases the first character and leaves the rest unchanged.
// Examples:
//
//	"User" -> "user"
//	"ID" -> "iD"
//	"" -> ""
func Decapitalize(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	b[0] = toLower(b[0])
	return string(b)
}

// SpecialChars splits s on delim, capitalizes each segment and concatenates
// the result.
// Examples:
//
//	("blog-post", "-") -> "BlogPost"
//	("user_id", "_") -> "UserId"
func SpecialChars(s string, delim Delimiter) string {
	return SpecialCharsCustomJoin(s, delim, "")
}

// SpecialCharsCustomJoin is SpecialChars with an arbitrary join string.
func SpecialCharsCustomJoin(s string, delim Delimiter, join string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, string(delim))
	for i, p := range parts {
		parts[i] = Capitalize(p)
	}
	return strings.Join(parts, join)
}

// Text returns v when it holds a string (including named string types) and
// "" for anything else, nil included. It is the boundary at which untyped
// values enter the package, so every transform fails soft on them the same
// way.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return ""
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = toLower(b[i])
	}
	return string(b)
}
