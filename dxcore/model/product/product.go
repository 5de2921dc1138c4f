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

// Package product provides the product domain used by the open/closed
// filtering example: Product, its Color and Size, the closed ProductFilter
// and the open ColorSpecification and SizeSpecification.
package product

import (
	"encoding/json"

	"dirpx.dev/dxsolid/dxcore/errors"
	"dirpx.dev/dxsolid/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Product is an immutable named item with a color and a size.
//
// Construct products with NewProduct, or by decoding JSON or YAML; both
// paths validate. The zero Product is invalid because its name is empty.
type Product struct {
	name  string
	color Color
	size  Size
}

// productDTO is the wire form of a Product.
type productDTO struct {
	Name  string `json:"name" yaml:"name"`
	Color Color  `json:"color" yaml:"color"`
	Size  Size   `json:"size" yaml:"size"`
}

// NewProduct returns a validated Product.
//
// An empty name yields a *errors.ValidationError for field "Name"; an
// out-of-range color or size is rejected the same way.
func NewProduct(name string, color Color, size Size) (Product, error) {
	p := Product{name: name, color: color, size: size}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Color returns the product color.
func (p Product) Color() Color { return p.color }

// Size returns the product size.
func (p Product) Size() Size { return p.size }

// Validate implements model.Validatable.
func (p Product) Validate() error {
	if p.name == "" {
		return &errors.ValidationError{
			Type:   "Product",
			Field:  "Name",
			Reason: "must not be empty",
		}
	}
	if err := p.color.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "Product",
			Field:  "Color",
			Reason: err.Error(),
			Value:  int(p.color),
		}
	}
	if err := p.size.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "Product",
			Field:  "Size",
			Reason: err.Error(),
			Value:  int(p.size),
		}
	}
	return nil
}

// TypeName implements model.Identifiable.
func (p Product) TypeName() string {
	return "Product"
}

// IsZero reports whether p is the zero Product.
func (p Product) IsZero() bool {
	return p.name == "" && p.color.IsZero() && p.size.IsZero()
}

// Redacted implements model.Loggable. Products carry no sensitive data, so
// this is the same as String.
func (p Product) Redacted() string {
	return p.String()
}

// String renders the product as "Product{Name:apple, Color:green, Size:small}".
func (p Product) String() string {
	return "Product{Name:" + p.name + ", Color:" + p.color.String() + ", Size:" + p.size.String() + "}"
}

func (p Product) dto() productDTO {
	return productDTO{Name: p.name, Color: p.color, Size: p.size}
}

func (p *Product) fromDTO(d productDTO) error {
	parsed, err := NewProduct(d.Name, d.Color, d.Size)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. Invalid products are rejected.
func (p Product) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(p.dto())
}

// UnmarshalJSON implements json.Unmarshaler and validates the result.
func (p *Product) UnmarshalJSON(data []byte) error {
	var d productDTO
	if err := json.Unmarshal(data, &d); err != nil {
		return &errors.UnmarshalError{Type: "Product", Data: data, Reason: err.Error()}
	}
	return p.fromDTO(d)
}

// MarshalYAML implements yaml.Marshaler. Invalid products are rejected.
func (p Product) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.dto(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler and validates the result.
func (p *Product) UnmarshalYAML(node *yaml.Node) error {
	var d productDTO
	if err := node.Decode(&d); err != nil {
		return &errors.UnmarshalError{Type: "Product", Data: []byte(node.Value), Reason: err.Error()}
	}
	return p.fromDTO(d)
}

var _ model.Model = (*Product)(nil)
