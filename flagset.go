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

package dflags

import (
	"fmt"
	"iter"
	"math/bits"

	"dirpx.dev/dflags/kind"
	"dirpx.dev/dflags/result"
)

// Unsigned constrains the carriers a bitmask enumeration may be defined
// over: the fixed-width unsigned integer types. Word-sized ~uint and
// ~uintptr are excluded; a flag domain must mean the same bits on every
// platform.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum is the contract a type must satisfy to be used as a bitmask
// enumeration, checked by the compiler at FlagSet instantiation:
//
//   - it is a defined type over a fixed-width unsigned integer (defined
//     types are never implicitly convertible, so raw integers cannot be
//     passed where flags are expected);
//   - it declares All() returning the union of every legal flag, the
//     domain mask.
//
// A conforming enumeration looks like this:
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
// IMPORTANT: All must be a value-receiver method that ignores its
// receiver and returns a constant. It is called on arbitrary values,
// including the zero value, to learn the domain. The mask may leave
// gaps: bit positions absent from All simply do not exist as flags.
type Enum[E Unsigned] interface {
	Unsigned
	All() E
}

// FlagSet is a validated set of flags drawn from the bitmask
// enumeration E.
//
// A FlagSet never holds bits outside E's domain mask: constructors mask
// or reject out-of-domain input, per-flag operations validate before
// touching the receiver, and the set algebra cannot introduce foreign
// bits. Code holding a FlagSet may therefore trust its content without
// re-checking.
//
// FlagSet is one machine word with value semantics: copy it, pass it,
// compare it with ==. No operation allocates or locks; distinct copies
// are independent, so the type is safe to use from concurrent
// goroutines the same way an int is (share by copying, not by pointer).
//
// The zero value is the empty set.
type FlagSet[E Enum[E]] struct {
	bits E
}

// New returns a FlagSet holding the in-domain bits of v. Bits outside
// the domain mask are silently discarded; combine flags with their
// native | before passing them in:
//
//	fs := dflags.New(PermRead | PermWrite)
//
// Use FromEnum instead when out-of-domain input must be reported rather
// than masked.
func New[E Enum[E]](v E) FlagSet[E] {
	return FlagSet[E]{bits: v & v.All()}
}

// FromBits returns a FlagSet holding the in-domain bits of a raw
// integer, truncating everything else: FromBits(r).Bits() == r & mask
// for every r. This is the permissive door for values arriving from
// storage or the wire.
func FromBits[E Enum[E]](raw uint64) FlagSet[E] {
	var zero E
	mask := zero.All()
	return FlagSet[E]{bits: E(raw) & mask}
}

// FromEnum is the checked counterpart of New: it refuses values with
// any bit outside the domain mask instead of masking them, failing with
// a ValueError. Use it at trust boundaries where silently dropping bits
// would hide a caller bug.
func FromEnum[E Enum[E]](v E) result.Result[FlagSet[E]] {
	if !IsValid(v) {
		return result.Err[FlagSet[E]](kind.Value, "Invalid enum value for FlagSet")
	}
	return result.Ok(FlagSet[E]{bits: v})
}

// IsValid reports whether v carries no bits outside E's domain mask.
// Both the zero value and the full mask are valid; so is any
// combination of declared flags.
func IsValid[E Enum[E]](v E) bool {
	return v&^v.All() == 0
}

// lowBit isolates the lowest set bit of v; zero stays zero. Per-flag
// operations resolve their operand through this, so a multi-bit value
// acts on its lowest flag only and a zero value acts on no bit at all.
func lowBit[E Unsigned](v E) E {
	return v & -v
}

// Has reports whether the flag v resolves to is present.
//
// An out-of-domain v fails with a ValueError. A zero v resolves to no
// bit and reports false; asking for "no flag" is a documented edge
// case, not a failure.
func (s FlagSet[E]) Has(v E) result.Result[bool] {
	if !IsValid(v) {
		return result.Err[bool](kind.Value, "Invalid enum value")
	}
	return result.Ok(s.bits&lowBit(v) != 0)
}

// Set inserts the flag v resolves to.
//
// An out-of-domain v fails with a ValueError and leaves the receiver
// untouched. A zero v resolves to no bit and succeeds without effect.
func (s *FlagSet[E]) Set(v E) result.Status {
	if !IsValid(v) {
		return result.Fail(kind.Value, "Invalid enum value")
	}
	s.bits |= lowBit(v)
	return result.OK()
}

// Clear removes the flag v resolves to.
//
// An out-of-domain v fails with a ValueError and leaves the receiver
// untouched. A zero v resolves to no bit and succeeds without effect.
func (s *FlagSet[E]) Clear(v E) result.Status {
	if !IsValid(v) {
		return result.Fail(kind.Value, "Invalid enum value")
	}
	s.bits &^= lowBit(v)
	return result.OK()
}

// Toggle inverts the flag v resolves to.
//
// An out-of-domain v fails with a ValueError and leaves the receiver
// untouched. A zero v resolves to no bit and succeeds without effect.
func (s *FlagSet[E]) Toggle(v E) result.Status {
	if !IsValid(v) {
		return result.Fail(kind.Value, "Invalid enum value")
	}
	s.bits ^= lowBit(v)
	return result.OK()
}

// SetAll sets every flag in the domain. It cannot fail; the Status is
// returned for signature uniformity with the per-flag operations.
func (s *FlagSet[E]) SetAll() result.Status {
	s.bits = s.bits.All()
	return result.OK()
}

// ClearAll empties the set. It cannot fail; the Status is returned for
// signature uniformity with the per-flag operations.
func (s *FlagSet[E]) ClearAll() result.Status {
	s.bits = 0
	return result.OK()
}

// ToggleAll inverts every flag in the domain: present flags drop out,
// absent ones come in. The flip is clamped to the domain mask, so
// toggling twice restores the original set exactly. It cannot fail; the
// Status is returned for signature uniformity with the per-flag
// operations.
func (s *FlagSet[E]) ToggleAll() result.Status {
	mask := s.bits.All()
	s.bits = (s.bits ^ mask) & mask
	return result.OK()
}

// Bits returns the raw integer representation of the set, widened to
// uint64. Round trip through FromBits to reconstruct.
func (s FlagSet[E]) Bits() uint64 {
	return uint64(s.bits)
}

// Enum returns the set as a value of the enumeration type, the union of
// the contained flags.
func (s FlagSet[E]) Enum() E {
	return s.bits
}

// HasAny reports whether at least one flag is set.
func (s FlagSet[E]) HasAny() bool {
	return s.bits != 0
}

// HasNone reports whether the set is empty.
func (s FlagSet[E]) HasNone() bool {
	return s.bits == 0
}

// Count returns the number of flags set.
func (s FlagSet[E]) Count() int {
	return bits.OnesCount64(uint64(s.bits))
}

// IsValid reports whether the set still satisfies the domain invariant.
// Every operation preserves it, so this is an assertion helper for
// tests and debugging rather than something callers need on hot paths.
func (s FlagSet[E]) IsValid() bool {
	return s.bits&^s.bits.All() == 0
}

// Or returns the union of s and o.
func (s FlagSet[E]) Or(o FlagSet[E]) FlagSet[E] {
	return FlagSet[E]{bits: s.bits | o.bits}
}

// And returns the intersection of s and o.
func (s FlagSet[E]) And(o FlagSet[E]) FlagSet[E] {
	return FlagSet[E]{bits: s.bits & o.bits}
}

// Xor returns the symmetric difference of s and o: flags in exactly one
// of the two sets.
func (s FlagSet[E]) Xor(o FlagSet[E]) FlagSet[E] {
	return FlagSet[E]{bits: s.bits ^ o.bits}
}

// Not returns the complement of s relative to the domain mask: every
// domain flag s lacks. Bits outside the domain never appear.
func (s FlagSet[E]) Not() FlagSet[E] {
	return FlagSet[E]{bits: ^s.bits & s.bits.All()}
}

// OrWith replaces s with the union of s and o, the in-place form of Or.
func (s *FlagSet[E]) OrWith(o FlagSet[E]) {
	s.bits |= o.bits
}

// AndWith replaces s with the intersection of s and o, the in-place
// form of And.
func (s *FlagSet[E]) AndWith(o FlagSet[E]) {
	s.bits &= o.bits
}

// XorWith replaces s with the symmetric difference of s and o, the
// in-place form of Xor.
func (s *FlagSet[E]) XorWith(o FlagSet[E]) {
	s.bits ^= o.bits
}

// Flags returns an iterator over the set flags, each yielded as a
// single-bit E, in ascending bit-position order. The sequence is lazy
// and restartable: ranging over it twice replays the same flags, and
// breaking out early costs nothing.
//
// The order is a contract shared with ForEach: both visit the same
// flags in the same order.
func (s FlagSet[E]) Flags() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := s.bits; v != 0; v &= v - 1 {
			if !yield(lowBit(v)) {
				return
			}
		}
	}
}

// ForEach calls fn once per set flag, each passed as a single-bit E, in
// ascending bit-position order: the same flags in the same order Flags
// yields. Unlike Flags it involves no iterator machinery at all, which
// keeps it allocation-free on paths that cannot afford the closure.
func (s FlagSet[E]) ForEach(fn func(E)) {
	for v := s.bits; v != 0; v &= v - 1 {
		fn(lowBit(v))
	}
}

// String renders the raw bit pattern for debugging, e.g. "FlagSet(0b101)".
func (s FlagSet[E]) String() string {
	return fmt.Sprintf("FlagSet(%#b)", uint64(s.bits))
}
