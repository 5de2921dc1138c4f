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

// Package shape illustrates the Liskov substitution principle.
//
// Rectangle and Square are independent implementations of the Shape
// capability. Code written against Shape, such as Area, observes consistent
// behavior for either one: a Square stays square no matter which setter was
// used last, so the area computed through the interface is always side*side.
//
// The broken variant of this example stores a square inside rectangle
// fields and hides, rather than overrides, the width setter. A caller holding
// the value as a rectangle then sets only the width and observes
// "Width: 2, Height: 0" with an area of 0. Giving each variant its own
// implementation of the full capability makes that mistake unrepresentable.
package shape

import "strconv"

// Shape is the capability shared by every quadrilateral in this package.
type Shape interface {
	Width() int
	Height() int
	SetWidth(w int)
	SetHeight(h int)
	String() string
}

// Area returns width times height for any Shape.
func Area(s Shape) int {
	return s.Width() * s.Height()
}

// Rectangle has independently mutable width and height.
//
// The zero value is a 0x0 rectangle ready to use.
type Rectangle struct {
	width  int
	height int
}

// NewRectangle returns a rectangle with the given dimensions.
func NewRectangle(width, height int) *Rectangle {
	return &Rectangle{width: width, height: height}
}

// Width returns the rectangle's width.
func (r *Rectangle) Width() int { return r.width }

// Height returns the rectangle's height.
func (r *Rectangle) Height() int { return r.height }

// SetWidth changes only the width.
func (r *Rectangle) SetWidth(w int) { r.width = w }

// SetHeight changes only the height.
func (r *Rectangle) SetHeight(h int) { r.height = h }

// String renders the rectangle as "Width: W, Height: H".
func (r *Rectangle) String() string {
	return format(r.width, r.height)
}

// Square keeps its width and height equal.
//
// It stores a single side, so there is no pair of fields that could drift
// apart. The zero value is a 0x0 square.
type Square struct {
	side int
}

// NewSquare returns a square with the given side.
func NewSquare(side int) *Square {
	return &Square{side: side}
}

// Width returns the side length.
func (s *Square) Width() int { return s.side }

// Height returns the side length.
func (s *Square) Height() int { return s.side }

// SetWidth sets both dimensions to w.
func (s *Square) SetWidth(w int) { s.side = w }

// SetHeight sets both dimensions to h.
func (s *Square) SetHeight(h int) { s.side = h }

// String renders the square the same way a Rectangle does.
func (s *Square) String() string {
	return format(s.side, s.side)
}

func format(w, h int) string {
	return "Width: " + strconv.Itoa(w) + ", Height: " + strconv.Itoa(h)
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
)
