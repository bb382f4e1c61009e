/*
   Copyright 2026 The DIRPX Authors

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

package kind

// Numeric values are part of the wire and storage contract and MUST NOT
// be renumbered. New kinds cannot be added: the taxonomy is closed.

// Fallback kind
const (
	// Generic indicates an unclassified failure. Use this as the fallback
	// when no other kind applies, or when classifying the failure more
	// precisely would add no value for the caller. Generic is the zero
	// value: a default-constructed error is a GenericError.
	//
	// Display name: "GenericError".
	Generic Kind = 0
)

// Numeric computation kinds
//
// Failures of arithmetic itself: the operands were acceptable, the
// computation was not.
const (
	// Arithmetic indicates a failure of an integer arithmetic operation
	// on otherwise well-typed operands, such as an illegal shift. Use the
	// more specific Overflow or ZeroDivision when they apply.
	//
	// Display name: "ArithmeticError".
	Arithmetic Kind = 1

	// FloatingPoint indicates a failure specific to floating-point
	// computation, such as a NaN or infinity reaching a place that
	// requires a finite value.
	//
	// Display name: "FloatingPointError".
	FloatingPoint Kind = 2

	// Overflow indicates that a result is too large or too small to be
	// represented in the target type or range.
	//
	// Display name: "OverflowError".
	Overflow Kind = 3

	// ZeroDivision indicates a division or modulo operation with a zero
	// divisor.
	//
	// Display name: "ZeroDivisionError".
	ZeroDivision Kind = 4
)

// Contract and lookup kinds
//
// The caller asked for something that is not there or asserted something
// that does not hold.
const (
	// Assertion indicates that an internal consistency check failed.
	// Use this when an invariant the code relies on turned out not to
	// hold; it usually points at a programming error, not at bad input.
	//
	// Display name: "AssertionError".
	Assertion Kind = 5

	// Attribute indicates that a referenced attribute, field or member
	// does not exist on the target object.
	//
	// Display name: "AttributeError".
	Attribute Kind = 6

	// Index indicates a sequence subscript outside the valid range.
	//
	// Display name: "IndexError".
	Index Kind = 7

	// Key indicates a lookup key that is absent from the target mapping.
	//
	// Display name: "KeyError".
	Key Kind = 8
)

// Environment and execution kinds
//
// Conditions raised by the surrounding platform or detected while the
// program runs, rather than by a single bad value.
const (
	// OS indicates a failure reported by the operating system: file
	// system errors, process errors, socket errors and similar.
	//
	// Display name: "OSError".
	OS Kind = 9

	// Timeout indicates that an operation did not complete within its
	// allotted time budget.
	//
	// Display name: "TimeoutError".
	Timeout Kind = 10

	// Runtime indicates a failure detected during execution that fits no
	// more specific kind but is clearly an execution-time condition
	// rather than a usage error.
	//
	// Display name: "RuntimeError".
	Runtime Kind = 11

	// NotImplemented indicates that the requested operation is declared
	// but intentionally has no implementation.
	//
	// Display name: "NotImplementedError".
	NotImplemented Kind = 12

	// Syntax indicates malformed input that failed parsing or lexing.
	//
	// Display name: "SyntaxError".
	Syntax Kind = 13

	// System indicates an internal platform or runtime failure outside
	// the program's control, distinct from OS-level errors.
	//
	// Display name: "SystemError".
	System Kind = 14
)

// Typing and value kinds
//
// The operand itself was wrong: wrong type, or right type with an
// unacceptable value.
const (
	// Type indicates an operation applied to a value of an inappropriate
	// type.
	//
	// Display name: "TypeError".
	Type Kind = 15

	// Value indicates an operation applied to a value of the right type
	// but an inappropriate value. This is the kind carried by all
	// flag-set domain violations.
	//
	// Display name: "ValueError".
	Value Kind = 16
)
