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

// Combinators for chaining fallible computations without unpacking the
// Result at every step. Each one runs its callback only when the
// matching channel is populated and passes the other channel through
// untouched, so a chain short-circuits on the first failure (or, for
// OrElse, on the first success).
//
// NOTE: these are free functions rather than methods because Go methods
// cannot introduce new type parameters; a method form of Map could never
// change the value type.

// Map transforms the success value of r with fn, leaving failures
// untouched. fn is not called when r is a failure.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.fail {
		return Result[U]{err: r.err, fail: true}
	}
	return Result[U]{value: fn(r.value)}
}

// MapErr transforms the carried Error of r with fn, leaving successes
// untouched. fn is not called when r is a success.
func MapErr[T any](r Result[T], fn func(Error) Error) Result[T] {
	if !r.fail {
		return r
	}
	return Result[T]{err: fn(r.err), fail: true}
}

// AndThen chains r into fn, which may itself fail. On success the value
// feeds fn and its Result is returned as-is; on failure fn is not called
// and the error propagates.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.fail {
		return Result[U]{err: r.err, fail: true}
	}
	return fn(r.value)
}

// OrElse recovers from a failure by handing the carried Error to fn,
// whose Result replaces r. Successes pass through and fn is not called.
func OrElse[T any](r Result[T], fn func(Error) Result[T]) Result[T] {
	if !r.fail {
		return r
	}
	return fn(r.err)
}
