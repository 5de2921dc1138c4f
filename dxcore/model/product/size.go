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

package product

import (
	"encoding/json"

	"dirpx.dev/dxsolid/dxcore/errors"
	"dirpx.dev/dxsolid/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Size is the size of a Product, ordered from Small to Yuge.
type Size int

const (
	Small Size = iota
	Medium
	Large
	Yuge
)

const (
	SmallStr  = "small"
	MediumStr = "medium"
	LargeStr  = "large"
	YugeStr   = "yuge"
)

// ParseSize converts a string to a Size.
func ParseSize(s string) (Size, error) {
	switch s {
	case SmallStr, "Small", "SMALL":
		return Small, nil
	case MediumStr, "Medium", "MEDIUM":
		return Medium, nil
	case LargeStr, "Large", "LARGE":
		return Large, nil
	case YugeStr, "Yuge", "YUGE":
		return Yuge, nil
	default:
		return Small, &errors.ParseError{Type: "Size", Value: s}
	}
}

// String returns the canonical lowercase name, or "unknown".
func (s Size) String() string {
	switch s {
	case Small:
		return SmallStr
	case Medium:
		return MediumStr
	case Large:
		return LargeStr
	case Yuge:
		return YugeStr
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined constants.
func (s Size) Valid() bool {
	return s >= Small && s <= Yuge
}

// TypeName implements model.Identifiable.
func (s Size) TypeName() string {
	return "Size"
}

// Redacted implements model.Loggable. Sizes carry nothing sensitive.
func (s Size) Redacted() string {
	return s.String()
}

// IsZero reports whether s is Small, the zero value.
func (s Size) IsZero() bool {
	return s == Small
}

// Validate implements model.Validatable.
func (s Size) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "Size",
			Reason: "invalid Size value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Sizes encode as their string name.
func (s Size) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Size", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both the string name and the
// numeric value are accepted.
func (s *Size) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Size", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Size", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseSize(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Size", Data: data, Reason: err.Error()}
	}
	if !Size(i).Valid() {
		return &errors.UnmarshalError{Type: "Size", Data: data, Reason: "invalid numeric value"}
	}
	*s = Size(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Size) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Size", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Size", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSize(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Size", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var _ model.Model = (*Size)(nil)
