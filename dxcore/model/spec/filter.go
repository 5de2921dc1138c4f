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

package spec

import (
	"iter"
	"slices"
)

// Filter selects the items of a sequence that satisfy a specification.
type Filter[T any] interface {
	Filter(items iter.Seq[T], s Specification[T]) iter.Seq[T]
}

// BetterFilter is the open-for-extension Filter: it never changes when new
// criteria are introduced.
//
// The zero value is ready to use.
type BetterFilter[T any] struct{}

// Filter returns a lazy sequence of the items satisfying s, in input order.
//
// Nothing is evaluated until the result is ranged over, and evaluation stops
// as soon as the consumer stops, so infinite inputs are fine. Ranging over the
// result again re-runs the filter over items; whether that yields the same
// values depends on items.
func (BetterFilter[T]) Filter(items iter.Seq[T], s Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range items {
			if s.IsSatisfied(item) && !yield(item) {
				return
			}
		}
	}
}

// Slice is shorthand for filtering a slice and collecting the result.
func Slice[T any](f Filter[T], items []T, s Specification[T]) []T {
	return slices.Collect(f.Filter(slices.Values(items), s))
}

var _ Filter[int] = BetterFilter[int]{}
