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

// Color is the color of a Product.
//
// Color values are serialized as lowercase strings ("red", "green", "blue").
// Numeric JSON input is accepted for compatibility but MUST be in range.
type Color int

const (
	// Red is the zero Color.
	Red Color = iota
	Green
	Blue
)

const (
	RedStr   = "red"
	GreenStr = "green"
	BlueStr  = "blue"
)

// ParseColor converts a string to a Color.
//
// Lowercase, title case and uppercase spellings are accepted. Any other
// input yields a *errors.ParseError.
func ParseColor(s string) (Color, error) {
	switch s {
	case RedStr, "Red", "RED":
		return Red, nil
	case GreenStr, "Green", "GREEN":
		return Green, nil
	case BlueStr, "Blue", "BLUE":
		return Blue, nil
	default:
		return Red, &errors.ParseError{Type: "Color", Value: s}
	}
}

// String returns the canonical lowercase name, or "unknown".
func (c Color) String() string {
	switch c {
	case Red:
		return RedStr
	case Green:
		return GreenStr
	case Blue:
		return BlueStr
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the defined constants.
func (c Color) Valid() bool {
	return c == Red || c == Green || c == Blue
}

// TypeName implements model.Identifiable.
func (c Color) TypeName() string {
	return "Color"
}

// Redacted implements model.Loggable. Colors carry nothing sensitive.
func (c Color) Redacted() string {
	return c.String()
}

// IsZero reports whether c is Red, the zero value.
func (c Color) IsZero() bool {
	return c == Red
}

// Validate implements model.Validatable.
func (c Color) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{
			Type:   "Color",
			Reason: "invalid Color value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Color) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Color", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Color", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Color", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Color", Data: data, Reason: err.Error()}
	}
	if !Color(i).Valid() {
		return &errors.UnmarshalError{Type: "Color", Data: data, Reason: "invalid numeric value"}
	}
	*c = Color(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Color", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Color", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseColor(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Color", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var _ model.Model = (*Color)(nil)
