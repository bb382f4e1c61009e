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

// Package dflags provides FlagSet, a validated, type-safe set of flags
// over a bitmask enumeration, backed by the dflags result mechanism
// (dirpx.dev/dflags/result) for every fallible operation.
//
// # Overview
//
// A bitmask enumeration is a defined type over a fixed-width unsigned
// integer whose named constants are single bits (or unions of them),
// together with an All() method returning the union of every legal
// flag, the domain mask. The Enum constraint captures that contract,
// and the compiler enforces it: FlagSet simply cannot be instantiated
// over a type that does not satisfy it.
//
// FlagSet guarantees one invariant everywhere: no value ever holds a
// bit outside the domain mask. Input that could violate it is either
// masked away (New, FromBits) or rejected with a ValueError (FromEnum
// and the per-flag operations), so downstream code never re-validates.
//
// # Declaring an enumeration
//
//	type Permissions uint32
//
//	const (
//		PermNone    Permissions = 0
//		PermRead    Permissions = 1
//		PermWrite   Permissions = 2
//		PermExecute Permissions = 4
//		PermAll     Permissions = PermRead | PermWrite | PermExecute
//	)
//
//	func (Permissions) All() Permissions { return PermAll }
//
// The mask may leave gaps; missing bit positions simply do not exist as
// flags and can never be set, observed or iterated.
//
// # Using a set
//
//	fs := dflags.New(PermRead | PermWrite)
//
//	if st := fs.Set(PermExecute); st.IsErr() {
//		// out-of-domain input, receiver untouched
//	}
//
//	has := result.Unwrap(fs.Has(PermRead)) // true
//
//	for flag := range fs.Flags() {
//		// single-bit flags in ascending bit order
//	}
//
// Construction comes in two named forms with different trust postures:
// the truncating form (New from an enum value, FromBits from a raw
// integer) silently keeps only in-domain bits, while the checked form
// (FromEnum) fails with a ValueError instead of masking. Pick per call
// site; both uphold the invariant.
//
// # Value semantics
//
// A FlagSet is one machine word. Every operation is pure integer
// arithmetic: no allocation, no locks, no global state. Copies are
// independent, == compares contents, and concurrent use follows the
// same rule as any plain value: share by copying, synchronize only
// what you mutate in place.
package dflags
