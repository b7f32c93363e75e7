package policyfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a policy document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// extendedContentKey is the field carrying the allow-list in the extended
// per-role object format.
const extendedContentKey = "allowedContent"

// LoadRaw reads a policy document from disk and returns it in the raw input
// shape consumed by policy.Manager.Initialize: role name mapped to a list of
// content identifiers. The format is picked by file extension (.json, .yaml,
// .yml).
//
// Both document layouts are accepted:
//
//	{"admin": ["read", "write"]}
//	{"admin": {"allowedContent": ["read", "write"], "description": "..."}}
//
// Extended per-role objects are flattened to their allowedContent list before
// reaching the decoder; anything else passes through unchanged so the decoder
// can report it per entry.
func LoadRaw(path string) (map[string]any, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	return ParseRaw(data, format)
}

// ParseRaw parses an in-memory policy document in the given format and
// flattens extended per-role objects. See LoadRaw.
func ParseRaw(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	raw := make(map[string]any, len(doc))
	for key, value := range doc {
		raw[key] = flatten(value)
	}
	return raw, nil
}

// flatten unwraps an extended per-role object into its allow-list; all other
// values are returned as-is for the decoder to validate.
func flatten(value any) any {
	obj, ok := value.(map[string]any)
	if !ok {
		return value
	}
	content, ok := obj[extendedContentKey]
	if !ok {
		return value
	}
	return content
}

func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", ErrUnsupportedFormat
	}
}
