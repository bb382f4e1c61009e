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

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Kind is the classification of an error, drawn from a closed taxonomy
// of exactly seventeen kinds.
//
// It is defined as a separate type (not just a small integer) so that
// other packages can explicitly declare which values they expect and so
// that raw numerics cannot be mixed in without a conversion.
//
// A Kind occupies one byte and is copied by value everywhere. The zero
// value is Generic.
type Kind uint8

// count is the number of kinds in the taxonomy. It is tied to the
// constant declarations in kinds.go: Value is the last kind.
//
// IMPORTANT: the taxonomy is closed. If this constant ever needs to
// change, the wire contract of every consumer changes with it.
const count = int(Value) + 1

var (
	// ErrKindInvalid is returned when a value cannot be parsed or
	// validated as a kind.
	//
	// Having a dedicated sentinel error makes it easier for callers and
	// tests to detect "this is about kind format" vs "this is some other
	// error".
	ErrKindInvalid = errors.New("dflags: invalid error kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
	_ fmt.Stringer             = (*Kind)(nil)
)

// Valid reports whether k is one of the seventeen declared kinds.
//
// Arbitrary numerics converted to Kind (e.g. Kind(99)) are invalid;
// every declared constant is valid.
func (k Kind) Valid() bool {
	return int(k) < count
}

// String returns the fixed CamelCase display name of the kind, for
// example "ValueError" for Value.
//
// The mapping is total and injective over the taxonomy: every declared
// kind has exactly one display name and no two kinds share one. This is
// the prefix used by formatted error text.
//
// Out-of-range numerics render as "Kind(N)"; that branch is not
// reachable through the declared constants.
func (k Kind) String() string {
	switch k {
	case Generic:
		return "GenericError"
	case Arithmetic:
		return "ArithmeticError"
	case FloatingPoint:
		return "FloatingPointError"
	case Overflow:
		return "OverflowError"
	case ZeroDivision:
		return "ZeroDivisionError"
	case Assertion:
		return "AssertionError"
	case Attribute:
		return "AttributeError"
	case Index:
		return "IndexError"
	case Key:
		return "KeyError"
	case OS:
		return "OSError"
	case Timeout:
		return "TimeoutError"
	case Runtime:
		return "RuntimeError"
	case NotImplemented:
		return "NotImplementedError"
	case Syntax:
		return "SyntaxError"
	case System:
		return "SystemError"
	case Type:
		return "TypeError"
	case Value:
		return "ValueError"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Ident returns the stable snake_case identifier of the kind, for
// example "value_error" for Value.
//
// Idents are meant for machine-facing payloads where CamelCase display
// names are not conventional (metric labels, structured reasons, config
// keys). Like display names, they are total and injective over the
// taxonomy.
func (k Kind) Ident() string {
	switch k {
	case Generic:
		return "generic_error"
	case Arithmetic:
		return "arithmetic_error"
	case FloatingPoint:
		return "floating_point_error"
	case Overflow:
		return "overflow_error"
	case ZeroDivision:
		return "zero_division_error"
	case Assertion:
		return "assertion_error"
	case Attribute:
		return "attribute_error"
	case Index:
		return "index_error"
	case Key:
		return "key_error"
	case OS:
		return "os_error"
	case Timeout:
		return "timeout_error"
	case Runtime:
		return "runtime_error"
	case NotImplemented:
		return "not_implemented_error"
	case Syntax:
		return "syntax_error"
	case System:
		return "system_error"
	case Type:
		return "type_error"
	case Value:
		return "value_error"
	default:
		return fmt.Sprintf("kind_%d", uint8(k))
	}
}

// Parse resolves a textual kind to its Kind value.
//
// Matching is deliberately forgiving about presentation but strict about
// identity: surrounding spaces, letter case and the separators '_' and
// '-' are ignored, so "ValueError", "value_error", "VALUE-ERROR" and
// " valueerror " all resolve to Value. Anything that does not name a
// declared kind fails with ErrKindInvalid.
func Parse(s string) (Kind, error) {
	folded := fold(s)
	if folded == "" {
		return Generic, fmt.Errorf("%w: empty input", ErrKindInvalid)
	}
	for k := Kind(0); int(k) < count; k++ {
		if folded == fold(k.String()) {
			return k, nil
		}
	}
	return Generic, fmt.Errorf("%w: %q", ErrKindInvalid, s)
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// fold reduces a string to the form used for matching: trimmed,
// lowercased, with '_' and '-' separators removed. Both the display name
// and the ident of a kind fold to the same string, so Parse accepts
// either.
func fold(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// MarshalText implements encoding.TextMarshaler.
//
// It always emits the canonical display name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrKindInvalid, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts any form Parse accepts.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
