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

// Package spec implements the specification pattern and a generic filter
// built on it, illustrating the open/closed principle.
//
// A Specification is a reusable predicate over some type T. New filtering
// criteria are added by writing new Specification implementations, or by
// combining existing ones with And, Or and Not, without modifying
// BetterFilter. Compare product.ProductFilter, which needs a new method for
// every new criterion.
//
// Specifications MUST be deterministic and free of side effects. Composite
// specifications hold references to their operands for their whole lifetime.
package spec

import "dirpx.dev/dxsolid/dxcore/errors"

// Specification is a predicate over values of type T.
type Specification[T any] interface {
	// IsSatisfied reports whether item meets the criterion.
	IsSatisfied(item T) bool
}

// Func adapts an ordinary function to a Specification.
type Func[T any] func(item T) bool

// IsSatisfied calls f(item).
func (f Func[T]) IsSatisfied(item T) bool {
	return f(item)
}

// AndSpecification is satisfied when both operands are satisfied.
type AndSpecification[T any] struct {
	first  Specification[T]
	second Specification[T]
}

// And combines two specifications with logical AND.
//
// It returns a *errors.ValidationError naming the nil operand if either
// first or second is nil.
func And[T any](first, second Specification[T]) (*AndSpecification[T], error) {
	if err := requireOperand("AndSpecification", "first", first); err != nil {
		return nil, err
	}
	if err := requireOperand("AndSpecification", "second", second); err != nil {
		return nil, err
	}
	return &AndSpecification[T]{first: first, second: second}, nil
}

// IsSatisfied evaluates the first operand and, only if it holds, the second.
func (s *AndSpecification[T]) IsSatisfied(item T) bool {
	return s.first.IsSatisfied(item) && s.second.IsSatisfied(item)
}

// OrSpecification is satisfied when either operand is satisfied.
type OrSpecification[T any] struct {
	first  Specification[T]
	second Specification[T]
}

// Or combines two specifications with logical OR.
//
// Nil operands are rejected the same way as in And.
func Or[T any](first, second Specification[T]) (*OrSpecification[T], error) {
	if err := requireOperand("OrSpecification", "first", first); err != nil {
		return nil, err
	}
	if err := requireOperand("OrSpecification", "second", second); err != nil {
		return nil, err
	}
	return &OrSpecification[T]{first: first, second: second}, nil
}

// IsSatisfied evaluates the first operand and, only if it fails, the second.
func (s *OrSpecification[T]) IsSatisfied(item T) bool {
	return s.first.IsSatisfied(item) || s.second.IsSatisfied(item)
}

// NotSpecification negates its operand.
type NotSpecification[T any] struct {
	inner Specification[T]
}

// Not negates a specification. A nil operand is rejected.
func Not[T any](inner Specification[T]) (*NotSpecification[T], error) {
	if err := requireOperand("NotSpecification", "inner", inner); err != nil {
		return nil, err
	}
	return &NotSpecification[T]{inner: inner}, nil
}

// IsSatisfied returns the inverse of the operand.
func (s *NotSpecification[T]) IsSatisfied(item T) bool {
	return !s.inner.IsSatisfied(item)
}

func requireOperand[T any](typ, field string, s Specification[T]) error {
	if s == nil {
		return &errors.ValidationError{
			Type:   typ,
			Field:  field,
			Reason: "must not be nil",
		}
	}
	return nil
}

var (
	_ Specification[int] = Func[int](nil)
	_ Specification[int] = (*AndSpecification[int])(nil)
	_ Specification[int] = (*OrSpecification[int])(nil)
	_ Specification[int] = (*NotSpecification[int])(nil)
)
