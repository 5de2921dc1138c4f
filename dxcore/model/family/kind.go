/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package family

import (
	"dirpx.dev/dxsolid/dxcore/errors"
	"dirpx.dev/dxsolid/dxcore/model"
	"gopkg.in/yaml.v3"
)

// RelationKind is the kind of a directed Relation, read as
// "From is the <kind> of To".
type RelationKind int

const (
	// Parent: From is a parent of To.
	Parent RelationKind = iota

	// Child: From is a child of To.
	Child

	// Siblings: From and To share a parent. Nothing in this package records
	// it yet; it exists so stores can model it.
	Siblings
)

const (
	ParentStr   = "parent"
	ChildStr    = "child"
	SiblingsStr = "siblings"
)

// ParseRelationKind converts a string to a RelationKind.
func ParseRelationKind(s string) (RelationKind, error) {
	switch s {
	case ParentStr, "Parent", "PARENT":
		return Parent, nil
	case ChildStr, "Child", "CHILD":
		return Child, nil
	case SiblingsStr, "Siblings", "SIBLINGS":
		return Siblings, nil
	default:
		return Parent, &errors.ParseError{Type: "RelationKind", Value: s}
	}
}

// String returns the canonical lowercase name, or "unknown".
func (k RelationKind) String() string {
	switch k {
	case Parent:
		return ParentStr
	case Child:
		return ChildStr
	case Siblings:
		return SiblingsStr
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined constants.
func (k RelationKind) Valid() bool {
	return k == Parent || k == Child || k == Siblings
}

// Inverse returns the kind seen from the other end of the relation.
// Siblings is its own inverse.
func (k RelationKind) Inverse() RelationKind {
	switch k {
	case Parent:
		return Child
	case Child:
		return Parent
	default:
		return k
	}
}

// TypeName implements model.Identifiable.
func (k RelationKind) TypeName() string { return "RelationKind" }

// Redacted implements model.Loggable. Kinds carry nothing sensitive.
func (k RelationKind) Redacted() string { return k.String() }

// IsZero reports whether k is Parent, the zero value.
func (k RelationKind) IsZero() bool { return k == Parent }

// Validate implements model.Validatable.
func (k RelationKind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{
			Type:   "RelationKind",
			Reason: "invalid RelationKind value",
			Value:  int(k),
		}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k RelationKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "RelationKind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *RelationKind) UnmarshalText(text []byte) error {
	parsed, err := ParseRelationKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalJSON encodes the kind as a JSON string.
func (k RelationKind) MarshalJSON() ([]byte, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(`"` + string(text) + `"`), nil
}

// UnmarshalJSON accepts only the string form.
func (k *RelationKind) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return &errors.UnmarshalError{Type: "RelationKind", Data: data, Reason: "expected a JSON string"}
	}
	return k.UnmarshalText(data[1 : len(data)-1])
}

// MarshalYAML implements yaml.Marshaler.
func (k RelationKind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "RelationKind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *RelationKind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "RelationKind", Data: []byte(node.Value), Reason: err.Error()}
	}
	return k.UnmarshalText([]byte(str))
}

var _ model.Model = (*RelationKind)(nil)
