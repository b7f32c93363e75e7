package policy

import (
	"encoding/json"
	"maps"
	"slices"
)

// Role is an immutable record of a role name, the content identifiers it may
// access, and opaque metadata. Roles are replaced wholesale, never mutated in
// place; use Clone before deriving a modified copy.
type Role struct {
	// Name uniquely identifies the role within a Table.
	Name string `json:"name"`

	// AllowedContent lists the content identifiers this role may access.
	// Membership is what matters; first-seen order is preserved for display.
	AllowedContent []string `json:"allowedContent"`

	// Metadata carries arbitrary extension data. It is never interpreted
	// by the evaluator and is excluded from equality.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewRole creates a Role with the given name and allowed content identifiers.
// Duplicate identifiers collapse, keeping their first occurrence.
func NewRole(name string, allowedContent ...string) Role {
	return Role{
		Name:           name,
		AllowedContent: dedup(allowedContent),
	}
}

// WithMetadata returns a copy of the role carrying the given metadata.
func (r Role) WithMetadata(metadata map[string]any) Role {
	clone := r.Clone()
	clone.Metadata = maps.Clone(metadata)
	return clone
}

// Allows reports whether the role grants access to the given content
// identifier. Matching is exact and case-sensitive.
func (r Role) Allows(content string) bool {
	return slices.Contains(r.AllowedContent, content)
}

// Equal reports whether two roles are equal: names match and allowed content
// is equal as a set, regardless of order or duplicates. Metadata is ignored.
func (r Role) Equal(other Role) bool {
	if r.Name != other.Name {
		return false
	}
	return setsEqual(r.AllowedContent, other.AllowedContent)
}

// Clone returns a deep copy of the role. Metadata values themselves are
// opaque and shared, matching the structural-copy contract of stores.
func (r Role) Clone() Role {
	return Role{
		Name:           r.Name,
		AllowedContent: slices.Clone(r.AllowedContent),
		Metadata:       maps.Clone(r.Metadata),
	}
}

// Table maps role names to roles. The Policy Manager owns the authoritative
// table; everything handed out is a copy.
type Table map[string]Role

// Clone returns a deep copy of the table. Cloning a nil table yields an
// empty, non-nil one.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for name, role := range t {
		clone[name] = role.Clone()
	}
	return clone
}

// Equal reports whether two tables hold the same role names with equal roles.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for name, role := range t {
		otherRole, ok := other[name]
		if !ok || !role.Equal(otherRole) {
			return false
		}
	}
	return true
}

// roleDoc is the persisted per-role shape. The table key carries the lookup
// name; Name is only written when the role's declared name differs from it.
type roleDoc struct {
	Name           string         `json:"name,omitempty"`
	AllowedContent []string       `json:"allowedContent"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// MarshalJSON serializes the table as a mapping from role name to an object
// with an allowedContent array and optional metadata.
func (t Table) MarshalJSON() ([]byte, error) {
	docs := make(map[string]roleDoc, len(t))
	for key, role := range t {
		doc := roleDoc{
			AllowedContent: role.AllowedContent,
			Metadata:       role.Metadata,
		}
		if role.Name != key {
			doc.Name = role.Name
		}
		docs[key] = doc
	}
	return json.Marshal(docs)
}

// UnmarshalJSON restores a table from its persisted shape. The table key
// names the role unless the document declares a differing name explicitly.
func (t *Table) UnmarshalJSON(data []byte) error {
	var docs map[string]roleDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return err
	}
	table := make(Table, len(docs))
	for key, doc := range docs {
		name := doc.Name
		if name == "" {
			name = key
		}
		role := NewRole(name, doc.AllowedContent...)
		role.Metadata = maps.Clone(doc.Metadata)
		table[key] = role
	}
	*t = table
	return nil
}

func dedup(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func setsEqual(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if _, ok := setB[v]; !ok {
			return false
		}
	}
	return true
}
