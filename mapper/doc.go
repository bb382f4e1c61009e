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

// Package mapper provides deterministic, immutable mappings from logical
// error kinds (dirpx.dev/dflags/kind) to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// In dflags every failure carries a kind.Kind, a value from a closed,
// enumerable taxonomy (kind.Value, kind.Key, kind.Timeout, ...).
//
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to turn
// a kind into concrete status codes. Package mapper does that in a way that
// is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per kind;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the kind;
//  2. per-kind default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// Because the kind taxonomy is closed, the library ships a complete default
// table: every declared kind resolves without hitting the fallback. The
// fallback only fires for out-of-range kind values, which can reach the
// boundary through unchecked integer conversions.
//
// # Library defaults
//
// The built-in table stays close to common REST and gRPC conventions while
// reflecting what each kind means (e.g. kind.Value -> 400 / InvalidArgument,
// kind.Key -> 404 / NotFound, kind.Timeout -> 504 / DeadlineExceeded,
// kind.NotImplemented -> 501 / Unimplemented). These can be adjusted at
// build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.Timeout, 408),
//	    mapper.WithGRPCOverride(kind.Timeout, int(codes.Canceled)),
//	)
//	if err != nil {
//	    // out-of-range kind in an option, etc.
//	}
//
//	st := m.Status(kind.Key)
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular kind was resolved, including which tier matched.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's options. This makes
// it safe to share a single instance across handlers, goroutines, and
// requests.
package mapper
