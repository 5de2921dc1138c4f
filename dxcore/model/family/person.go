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
	"encoding/json"
	"unicode/utf8"

	"dirpx.dev/dxsolid/dxcore/errors"
	"dirpx.dev/dxsolid/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Person is someone who can take part in a Relation.
type Person struct {
	Name string `json:"name" yaml:"name"`
}

// Validate reports an empty name as a *errors.ValidationError.
func (p Person) Validate() error {
	if p.Name == "" {
		return &errors.ValidationError{
			Type:   "Person",
			Field:  "Name",
			Reason: "must not be empty",
		}
	}
	return nil
}

// TypeName implements model.Identifiable.
func (p Person) TypeName() string { return "Person" }

// IsZero reports whether p has no name.
func (p Person) IsZero() bool { return p.Name == "" }

// Redacted keeps the first letter of the name and masks the rest, so
// "Mary" becomes "Person{Name:M***}".
func (p Person) Redacted() string {
	if p.Name == "" {
		return "Person{Name:}"
	}
	r, _ := utf8.DecodeRuneInString(p.Name)
	return "Person{Name:" + string(r) + "***}"
}

// String renders the person with the full name. Use Redacted in logs.
func (p Person) String() string {
	return "Person{Name:" + p.Name + "}"
}

// MarshalJSON implements json.Marshaler. Invalid persons are rejected.
func (p Person) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	type alias Person
	return json.Marshal((alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler and validates the result.
func (p *Person) UnmarshalJSON(data []byte) error {
	type alias Person
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return &errors.UnmarshalError{Type: "Person", Data: data, Reason: err.Error()}
	}
	return p.Validate()
}

// MarshalYAML implements yaml.Marshaler. Invalid persons are rejected.
func (p Person) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	type alias Person
	return (alias)(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler and validates the result.
func (p *Person) UnmarshalYAML(node *yaml.Node) error {
	type alias Person
	if err := node.Decode((*alias)(p)); err != nil {
		return &errors.UnmarshalError{Type: "Person", Data: []byte(node.Value), Reason: err.Error()}
	}
	return p.Validate()
}

var _ model.Model = (*Person)(nil)
