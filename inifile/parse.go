// Package inifile reads and writes the INI dialect used by namecase.ini.
//
// Section and key names are case-insensitive and stored lower-cased. Values
// keep their case; surrounding double quotes are removed and a trailing
// " #" or " ;" comment is stripped from unquoted values.
package inifile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// File represents a parsed INI file.
type File struct {
	Sections []Section
}

// Section represents a named section in an INI file.
type Section struct {
	Name   string     // e.g., "render", "log"
	Values []KeyValue // preserves order
}

// KeyValue represents a key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse reads an INI file from the given reader.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	var current *Section

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "unterminated section header"}
			}
			name := strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			if name == "" {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "empty section name"}
			}
			current = f.section(name, true)
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "expected key = value"}
		}
		if current == nil {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "key outside of any section"}
		}

		key = strings.ToLower(strings.TrimSpace(key))
		current.Values = append(current.Values, KeyValue{Key: key, Value: parseValue(value)})
	}

	return f, scanner.Err()
}

// parseValue trims, strips a trailing comment and unquotes. Comment markers
// inside a quoted value are part of the value.
func parseValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, `"`) {
		if end := strings.Index(v[1:], `"`) + 1; end > 0 && isComment(v[end+1:]) {
			return v[1:end]
		}
	}
	for _, marker := range []string{" #", " ;"} {
		if i := strings.Index(v, marker); i >= 0 {
			v = strings.TrimSpace(v[:i])
		}
	}
	return v
}

// isComment reports whether rest, the text after a closing quote, is empty
// or only a comment.
func isComment(rest string) bool {
	rest = strings.TrimSpace(rest)
	return rest == "" || rest[0] == '#' || rest[0] == ';'
}

// ParseFile reads and parses an INI file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

// section returns the named section, appending it when create is set.
// Repeated headers in a file merge into the first section of that name.
func (f *File) section(name string, create bool) *Section {
	for i := range f.Sections {
		if f.Sections[i].Name == name {
			return &f.Sections[i]
		}
	}
	if !create {
		return nil
	}
	f.Sections = append(f.Sections, Section{Name: name})
	return &f.Sections[len(f.Sections)-1]
}

// Section returns the section with the given name (case-insensitive).
func (f *File) Section(name string) *Section {
	return f.section(strings.ToLower(name), false)
}

// Get returns the last value for a key in a section.
func (f *File) Get(section, key string) string {
	s := f.Section(section)
	if s == nil {
		return ""
	}
	return s.Get(key)
}

// Get returns the last value for a key (case-insensitive).
func (s *Section) Get(key string) string {
	key = strings.ToLower(key)
	var result string
	for _, kv := range s.Values {
		if kv.Key == key {
			result = kv.Value
		}
	}
	return result
}

// Set sets a key-value pair in the specified section, creating the section
// when needed and replacing an existing value.
func (f *File) Set(section, key, value string) {
	s := f.section(strings.ToLower(section), true)
	key = strings.ToLower(key)

	for i := range s.Values {
		if s.Values[i].Key == key {
			s.Values[i].Value = value
			return
		}
	}
	s.Values = append(s.Values, KeyValue{Key: key, Value: value})
}

// Write serializes the INI file to the given writer.
func (f *File) Write(w io.Writer) error {
	for i, section := range f.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%s]\n", section.Name); err != nil {
			return err
		}
		for _, kv := range section.Values {
			if _, err := fmt.Fprintf(w, "%s = %s\n", kv.Key, formatValue(kv.Value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatValue quotes values that would not survive a Parse round trip.
func formatValue(v string) string {
	if v != strings.TrimSpace(v) || strings.Contains(v, " #") || strings.Contains(v, " ;") {
		return `"` + v + `"`
	}
	return v
}

// WriteFile writes the INI file to the specified path.
func (f *File) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := f.Write(file); err != nil {
		return err
	}
	return file.Sync()
}
