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

// Package model defines the contracts shared by the dxsolid value types.
//
// The subpackages each illustrate one SOLID principle:
//
//   - shape:   Liskov substitution (Rectangle and Square behind Shape)
//   - spec:    open/closed (composable specifications and a generic filter)
//   - product: open/closed (the product domain the specifications filter)
//   - journal: single responsibility (Journal versus Persistence)
//   - device:  interface segregation (Printer, Scanner, Fax versus Machine)
//   - family:  dependency inversion (Research depends on RelationshipBrowser)
//
// Value types that cross a serialization boundary (Product, Person, the
// enum-like Color, Size and RelationKind) implement Model so they can be
// validated, encoded to JSON and YAML, and logged without leaking data.
//
// Unless documented otherwise, types are not safe for concurrent mutation.
// Immutable value types are safe for concurrent reads.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the contracts every serializable
// dxsolid value type implements.
//
// Example implementation:
//
//	type Tag struct {
//	    Name string
//	}
//
//	func (t Tag) Validate() error {
//	    if t.Name == "" {
//	        return &errors.ValidationError{Type: "Tag", Field: "Name", Reason: "must not be empty"}
//	    }
//	    return nil
//	}
//
//	func (t Tag) TypeName() string { return "Tag" }
//	func (t Tag) IsZero() bool     { return t.Name == "" }
//	func (t Tag) Redacted() string { return "Tag{...}" }
//	func (t Tag) String() string   { return "Tag{Name:" + t.Name + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Tag)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST return nil if and only if every invariant holds. It MUST be
// deterministic, MUST NOT mutate the receiver and MUST NOT perform I/O.
// Failures SHOULD be reported as *errors.ValidationError naming the field.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Marshal methods MUST refuse invalid instances. Unmarshal methods MUST
// validate the decoded value before returning. Implementations SHOULD use a
// local type alias to avoid re-entering the custom method:
//
//	func (t Tag) MarshalJSON() ([]byte, error) {
//	    if err := t.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias Tag
//	    return json.Marshal((alias)(t))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types with a safe log representation.
//
// Redacted MUST mask personal data (a person's full name, for example) and
// is the form used in structured logs. String MAY include everything and is
// meant for demonstration output and test assertions.
type Loggable interface {
	// Redacted returns a representation safe for production logs.
	Redacted() string

	// String returns the full human-readable representation.
	String() string
}

// Identifiable defines the contract for types that report a canonical,
// constant CamelCase type name without a package prefix.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// hold no meaningful data.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}
