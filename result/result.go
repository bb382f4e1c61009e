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

package result

import (
	"dirpx.dev/dflags/kind"
)

// Result carries the outcome of a fallible operation: either a value of
// type T or an Error, never both and never neither.
//
// Result is a small value type. Constructing, copying and inspecting one
// performs no allocation; the error payload is embedded, not boxed. Use
// Ok and Err to construct, IsOK/IsErr/Value/Err to inspect, Unwrap to
// assert success, and the Map/MapErr/AndThen/OrElse combinators to chain
// computations without unpacking at every step.
//
// The zero value of Result[T] is a success holding T's zero value.
type Result[T any] struct {
	value T
	err   Error
	fail  bool
}

// Status is the outcome of a fallible operation with no payload to
// return: success carries nothing, failure carries an Error.
//
// It plays the role a Result over an empty value type would play, as a
// distinct concrete type so that call sites stay free of placeholder
// type arguments. Use OK and Fail to construct and Verify to assert
// success.
//
// The zero value of Status is success.
type Status struct {
	err  Error
	fail bool
}

// Ok returns a success Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failure Result classified under k with the given
// message. The value channel is left at T's zero value and is not
// observable through the accessors.
func Err[T any](k kind.Kind, msg string) Result[T] {
	return Result[T]{err: Error{Kind: k, Message: msg}, fail: true}
}

// OK returns a success Status.
func OK() Status {
	return Status{}
}

// Fail returns a failure Status classified under k with the given
// message. It is the Status analogue of Err.
func Fail(k kind.Kind, msg string) Status {
	return Status{err: Error{Kind: k, Message: msg}, fail: true}
}

// IsOK reports whether the success channel is populated.
func (r Result[T]) IsOK() bool { return !r.fail }

// IsErr reports whether the error channel is populated.
func (r Result[T]) IsErr() bool { return r.fail }

// Value returns the success value and true, or T's zero value and false
// when the error channel is populated.
func (r Result[T]) Value() (T, bool) {
	if r.fail {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ValueOr returns the success value, or fallback when the error channel
// is populated.
func (r Result[T]) ValueOr(fallback T) T {
	if r.fail {
		return fallback
	}
	return r.value
}

// Err returns the carried Error and true, or the zero Error and false
// when the success channel is populated.
func (r Result[T]) Err() (Error, bool) {
	if !r.fail {
		return Error{}, false
	}
	return r.err, true
}

// Get unpacks the Result into the conventional Go (value, error) pair:
// (v, nil) on success, (zero, Error) on failure. This is the bridge out
// of the Result mechanism; unlike the other accessors it boxes the Error
// into the error interface.
func (r Result[T]) Get() (T, error) {
	if r.fail {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// IsOK reports whether the operation succeeded.
func (s Status) IsOK() bool { return !s.fail }

// IsErr reports whether the operation failed.
func (s Status) IsErr() bool { return s.fail }

// Err returns the carried Error and true, or the zero Error and false
// when the operation succeeded.
func (s Status) Err() (Error, bool) {
	if !s.fail {
		return Error{}, false
	}
	return s.err, true
}

// AsError converts the Status to a conventional Go error: nil on
// success, the boxed Error on failure. This is the bridge out of the
// Status mechanism for code that speaks plain errors.
func (s Status) AsError() error {
	if !s.fail {
		return nil
	}
	return s.err
}

// Unwrap returns the success value of r.
//
// IMPORTANT: Unwrap is the hard assertion of the mechanism. If the error
// channel is populated it panics with the formatted error text; there is
// no recovery path by design. Call it only where failure is a
// programming error, the way the original call sites assert invariants.
func Unwrap[T any](r Result[T]) T {
	if r.fail {
		panic("result: unwrap of failed result: " + r.err.String())
	}
	return r.value
}

// Verify asserts that s succeeded, panicking with the formatted error
// text otherwise. It is the Status analogue of Unwrap.
func Verify(s Status) {
	if s.fail {
		panic("result: verify of failed status: " + s.err.String())
	}
}
