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
	"iter"

	"dirpx.dev/dxsolid/dxcore/model/spec"
)

// ProductFilter filters products by a fixed set of criteria.
//
// Every new criterion needs a new method here, so the type is never closed
// for modification. It is kept as the counterpart of spec.BetterFilter.
type ProductFilter struct{}

// FilterBySize yields the products of the given size, in input order.
func (ProductFilter) FilterBySize(products iter.Seq[Product], size Size) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for p := range products {
			if p.size == size && !yield(p) {
				return
			}
		}
	}
}

// FilterByColor yields the products of the given color, in input order.
func (ProductFilter) FilterByColor(products iter.Seq[Product], color Color) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for p := range products {
			if p.color == color && !yield(p) {
				return
			}
		}
	}
}

// FilterByColorAndSize yields the products matching both color and size.
func (ProductFilter) FilterByColorAndSize(products iter.Seq[Product], color Color, size Size) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for p := range products {
			if p.color == color && p.size == size && !yield(p) {
				return
			}
		}
	}
}

// ColorSpecification is satisfied by products of one color.
type ColorSpecification struct {
	color Color
}

// ByColor returns a specification matching products of the given color.
func ByColor(color Color) ColorSpecification {
	return ColorSpecification{color: color}
}

// IsSatisfied reports whether p has the specification's color.
func (s ColorSpecification) IsSatisfied(p Product) bool {
	return p.color == s.color
}

// SizeSpecification is satisfied by products of one size.
type SizeSpecification struct {
	size Size
}

// BySize returns a specification matching products of the given size.
func BySize(size Size) SizeSpecification {
	return SizeSpecification{size: size}
}

// IsSatisfied reports whether p has the specification's size.
func (s SizeSpecification) IsSatisfied(p Product) bool {
	return p.size == s.size
}

var (
	_ spec.Specification[Product] = ColorSpecification{}
	_ spec.Specification[Product] = SizeSpecification{}
)
