// Package schemafile reads model schema documents from disk. JSON, YAML and
// TOML documents are supported and selected by file extension.
package schemafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/shipq/namecase/variations"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported schema format")
	ErrMissingModel      = errors.New("schema has no model name")
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".json", ".yaml", ".yml", ".toml"}

// Document is a schema together with the file it was read from.
type Document struct {
	Path   string
	Schema variations.Schema
}

// IsSchemaFile reports whether path has a supported extension.
func IsSchemaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads and decodes a single schema file. A missing modelPlural is
// derived from model.
func Load(path string) (*variations.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	s, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a schema document of the given format (a file extension
// such as ".yaml").
func Decode(data []byte, ext string) (*variations.Schema, error) {
	var s variations.Schema

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := decodeTOML(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if s.Model == "" {
		return nil, ErrMissingModel
	}
	s.Normalize()
	return &s, nil
}

// decodeTOML goes through a generic map so that variations.Name gets the
// same fail-soft decoding as the JSON path.
func decodeTOML(data []byte, s *variations.Schema) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, s)
}

// LoadDir loads every schema file directly inside dir, sorted by path.
// Files with other extensions are ignored.
func LoadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !IsSchemaFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Path: path, Schema: *s})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}
