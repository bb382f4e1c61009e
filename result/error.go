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
	"fmt"

	"dirpx.dev/dflags/kind"
	"dirpx.dev/dflags/result/internal/fixedfmt"
)

// bufSize is the fixed capacity, in bytes, of the per-call buffer used
// to render an Error as text. Rendered output never exceeds it; longer
// text is truncated, never rejected.
const bufSize = 256

// Error is the failure payload carried by Result and Status.
//
// It is a plain immutable value: two words of message plus one byte of
// classification, copied freely and compared with ==. There is no cause
// chain, no stack trace and no mutable state; the kind and the message
// are the whole story. Construct one with NewError, or indirectly with
// Err and Fail.
//
// The zero value is a GenericError with an empty message and is valid.
//
// Error implements the built-in error interface, so values cross
// ordinary Go error boundaries (and errors.As retrieves them back) when
// code outside the Result mechanism is involved.
type Error struct {
	// Kind is the classification of the failure, one of the seventeen
	// declared taxonomy kinds. The zero value is kind.Generic.
	Kind kind.Kind

	// Message is the human-readable description of the failure. It is
	// carried verbatim: rendering applies the kind prefix but never
	// rewrites the message itself.
	Message string
}

// NewError returns an Error classified under k with the given message.
func NewError(k kind.Kind, msg string) Error {
	return Error{Kind: k, Message: msg}
}

// String renders the error as
//
//	<KindDisplayName>: <message>
//
// for example "ZeroDivisionError: division by zero".
//
// Rendering goes through a fixed 256-byte stack buffer: the output never
// exceeds 256 bytes and is truncated beyond that, always keeping the
// kind prefix intact. Each call uses its own buffer, so concurrent
// rendering never interferes and nothing is allocated beyond the
// returned string itself.
func (e Error) String() string {
	var buf [bufSize]byte
	n := fixedfmt.Format(buf[:], "%s: %s", e.Kind.String(), e.Message)
	return string(buf[:n])
}

// Error implements the built-in error interface. It returns the same
// text as String.
func (e Error) Error() string {
	return e.String()
}

// ErrorKind returns the classification of the failure. It satisfies
// apis.KindedError, which is how transport adapters recognize dflags
// errors among arbitrary Go errors.
func (e Error) ErrorKind() kind.Kind {
	return e.Kind
}

// WithKind returns a copy of e reclassified under k.
// The original error is not modified.
func (e Error) WithKind(k kind.Kind) Error {
	e.Kind = k
	return e
}

// WithMessage returns a copy of e with a replaced human message.
// Useful when you want to keep the kind but present the message in a
// different context, typically inside a MapErr callback.
func (e Error) WithMessage(msg string) Error {
	e.Message = msg
	return e
}

var (
	_ error        = Error{}
	_ fmt.Stringer = Error{}
)
