package policy

import (
	"fmt"
	"maps"
	"slices"
)

// DecodeOption configures batch decoding.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strict bool
}

// Strict disallows partial success: any invalid entry aborts the whole batch
// with a DecodeError instead of being skipped.
func Strict() DecodeOption {
	return func(c *decodeConfig) {
		c.strict = true
	}
}

// Decode converts a raw attribute map (e.g. parsed JSON) into a validated
// Table. Each value must be a list of strings; entries with a missing value,
// a non-list value, or a non-string element are skipped and reported as
// Issues rather than failing the whole batch.
//
// Decode returns a *DecodeError and no table when a non-empty input yields
// zero valid entries, or when Strict is set and any entry is invalid. An
// empty input is a valid, empty table.
func Decode(raw map[string]any, opts ...DecodeOption) (Table, []Issue, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	table := make(Table, len(raw))
	var issues []Issue

	// Sorted key order keeps issue reporting deterministic; the resulting
	// table is set-based and unaffected by iteration order.
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if key == "" {
			issues = append(issues, Issue{Key: key, Reason: "empty role name"})
			continue
		}
		content, reason := contentList(raw[key])
		if reason != "" {
			issues = append(issues, Issue{Key: key, Reason: reason})
			continue
		}
		table[key] = NewRole(key, content...)
	}

	if len(raw) > 0 && len(table) == 0 {
		return nil, issues, &DecodeError{Issues: issues, noValidRoles: true}
	}
	if cfg.strict && len(issues) > 0 {
		return nil, issues, &DecodeError{Issues: issues}
	}
	return table, issues, nil
}

// contentList validates a raw entry value as a list of content identifiers.
// It returns a non-empty reason when the value has the wrong shape.
func contentList(value any) ([]string, string) {
	switch v := value.(type) {
	case nil:
		return nil, "value is missing"
	case []string:
		return v, ""
	case []any:
		content := make([]string, 0, len(v))
		for i, element := range v {
			s, ok := element.(string)
			if !ok {
				return nil, fmt.Sprintf("element %d is %T, expected string", i, element)
			}
			content = append(content, s)
		}
		return content, ""
	default:
		return nil, fmt.Sprintf("expected a list of strings, got %T", value)
	}
}
