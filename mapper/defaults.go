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

package mapper

import (
	"net/http"

	"dirpx.dev/dflags/kind"

	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for every declared
// error kind. These are only defaults: callers are expected to wrap or
// override them at the boundary where HTTP is actually produced (REST
// gateway, HTTP handler, etc.).
//
// The table is deliberately total over the kind taxonomy so that a declared
// kind never falls through to the hard fallback.
var defaultHTTP = map[kind.Kind]int{
	// 5xx: failures on the server side of the contract.
	kind.Generic:       http.StatusInternalServerError, // Unclassified failure; do not expose internal details.
	kind.Arithmetic:    http.StatusInternalServerError, // A numeric computation failed inside the server.
	kind.FloatingPoint: http.StatusInternalServerError, // A floating-point operation failed.
	kind.Overflow:      http.StatusInternalServerError, // A result exceeded the representable range.
	kind.Assertion:     http.StatusInternalServerError, // An internal invariant did not hold.
	kind.Attribute:     http.StatusInternalServerError, // A field or attribute reference failed internally.
	kind.OS:            http.StatusInternalServerError, // An operating system call failed.
	kind.Runtime:       http.StatusInternalServerError, // Unexpected runtime failure.
	kind.System:        http.StatusInternalServerError, // Environment or platform level failure.

	kind.NotImplemented: http.StatusNotImplemented, // The requested operation is recognized but not built.
	kind.Timeout:        http.StatusGatewayTimeout, // Operation exceeded the time budget.

	// 4xx: the caller supplied something the server cannot act on.
	kind.ZeroDivision: http.StatusBadRequest, // A divisor supplied by the caller was zero.
	kind.Syntax:       http.StatusBadRequest, // Malformed input that failed to parse.
	kind.Type:         http.StatusBadRequest, // An argument had the wrong type entirely.
	kind.Value:        http.StatusBadRequest, // An argument had the right type but a bad value.
	kind.Index:        http.StatusBadRequest, // A sequence index was out of range.

	kind.Key: http.StatusNotFound, // A lookup key does not exist (or is not visible).
}

// defaultGRPC defines the library's built-in gRPC mappings for every declared
// error kind. These values are chosen to align with canonical gRPC status
// codes while still preserving the meaning of each kind. As with HTTP,
// callers may override these at the transport edge if a different policy is
// required.
var defaultGRPC = map[kind.Kind]codes.Code{
	// Unclassified.
	kind.Generic: codes.Unknown,

	// Server-side computation and environment.
	kind.Arithmetic:    codes.Internal, // Numeric computation failed.
	kind.FloatingPoint: codes.Internal, // Floating-point operation failed.
	kind.Assertion:     codes.Internal, // Internal invariant did not hold.
	kind.Attribute:     codes.Internal, // Attribute reference failed.
	kind.OS:            codes.Internal, // OS call failed.
	kind.Runtime:       codes.Internal, // Unexpected runtime failure.
	kind.System:        codes.Internal, // Environment or platform failure.

	kind.Overflow: codes.OutOfRange, // Result exceeded the representable range.

	// Input / contract.
	kind.ZeroDivision: codes.InvalidArgument, // Zero divisor supplied by the caller.
	kind.Syntax:       codes.InvalidArgument, // Input failed to parse.
	kind.Type:         codes.InvalidArgument, // Wrong argument type.
	kind.Value:        codes.InvalidArgument, // Right type, bad value.
	kind.Index:        codes.OutOfRange,      // Sequence index out of range.

	// Lookup.
	kind.Key: codes.NotFound, // Lookup key does not exist.

	// Time and capability.
	kind.Timeout:        codes.DeadlineExceeded, // Time budget exceeded.
	kind.NotImplemented: codes.Unimplemented,    // Recognized but not built.
}
