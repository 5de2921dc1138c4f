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

// Package errors provides the error types shared by every dxsolid package.
//
// The types are plain value carriers with stable message formats. They are
// meant to be constructed at the call that violates a precondition and
// recognized by callers with errors.As.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type (Color, Size,
//     RelationKind) fails.
//
//   - MarshalError
//     Returned when marshaling an enum-like value outside its constant set.
//
//   - UnmarshalError
//     Returned when decoding JSON, YAML or text into a typed value fails.
//
//   - ValidationError
//     The invalid-argument error. Returned when a required collaborator is
//     absent (a nil printer, scanner, specification operand or browser) or
//     a required field is empty (a product or person name).
//
//   - RangeError
//     The out-of-range error. Returned when a positional index does not
//     address an element, for example removing a journal entry.
//
//   - UnsupportedError
//     Returned by implementations of a fat interface for operations they
//     cannot actually perform.
//
// # Usage
//
//	var verr *errors.ValidationError
//	if stderrors.As(err, &verr) {
//	    fmt.Println("bad argument:", verr.Field)
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Color"), and
// Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Color").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxsolid: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxsolid: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// conversion from an unchecked integer.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Size").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxsolid: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxsolid: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload, and Reason provides a human-readable description of
// what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxsolid: cannot unmarshal {Type}: {Reason}"
//
// Data is not included in the message; callers can log it separately.
func (e *UnmarshalError) Error() string {
	return "dxsolid: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError reports an invalid argument or an invalid model state.
//
// Type names the type being validated or constructed (for example,
// "Product", "MultifunctionDevice"), Field optionally names the offending
// field or parameter, Reason explains the failure, and Value optionally
// carries the rejected value.
//
// # Example
//
//	if printer == nil {
//	    return nil, &errors.ValidationError{
//	        Type:   "MultifunctionDevice",
//	        Field:  "printer",
//	        Reason: "must not be nil",
//	    }
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field or parameter that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxsolid: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxsolid: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxsolid: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxsolid: invalid " + e.Type + ": " + e.Reason
}

// RangeError is returned when an index does not address an existing element.
//
// Index is the rejected position and Len is the number of elements that were
// present when the call was made.
type RangeError struct {
	// Type is the logical name of the indexed collection (for example, "Journal").
	Type string

	// Index is the rejected position.
	Index int

	// Len is the collection length at the time of the call.
	Len int
}

// Error implements the error interface for RangeError.
//
// The error message format is:
//
//	"dxsolid: {Type} index {Index} out of range [0, {Len})"
func (e *RangeError) Error() string {
	return "dxsolid: " + e.Type + " index " + strconv.Itoa(e.Index) +
		" out of range [0, " + strconv.Itoa(e.Len) + ")"
}

// UnsupportedError is returned when a type is asked to perform an operation
// it only implements to satisfy an interface.
type UnsupportedError struct {
	// Type is the logical name of the implementation.
	Type string

	// Operation is the name of the unsupported method.
	Operation string
}

// Error implements the error interface for UnsupportedError.
//
// The error message format is:
//
//	"dxsolid: {Type} does not support {Operation}"
func (e *UnsupportedError) Error() string {
	return "dxsolid: " + e.Type + " does not support " + e.Operation
}
