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

// Package result implements the dflags fallible-outcome mechanism:
// Result for operations that produce a value, Status for operations that
// do not, and Error as the failure payload both carry.
//
// The mechanism is value-based end to end. Outcomes are small structs
// passed and returned by value; errors are embedded, not boxed; no
// constructor, accessor or combinator allocates. That makes Result the
// right return type on hot paths where the conventional (T, error) pair
// would force an interface allocation per failure.
//
// A typical producer:
//
//	func divide(a, b int32) result.Result[int32] {
//		if b == 0 {
//			return result.Err[int32](kind.ZeroDivision, "division by zero")
//		}
//		return result.Ok(a / b)
//	}
//
// and a consumer that chains without unpacking:
//
//	doubled := result.Map(divide(10, 2), func(v int32) int32 { return v * 2 })
//
// Interop with plain Go errors happens only at the edges: Result.Get and
// Status.AsError box the Error into the error interface, and Error
// itself implements error so errors.As recovers it on the far side of
// any boundary.
//
// Every failure is classified under one of the seventeen kinds from
// dirpx.dev/dflags/kind and renders as "<KindName>: <message>" through a
// bounded 256-byte per-call buffer (see Error.String).
package result
