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
	"fmt"
	"strings"

	"dirpx.dev/dflags/apis"
	"dirpx.dev/dflags/kind"

	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance; no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides).
//  3. Validate that every configured kind is in range.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate an out-of-range kind in one of
// the options.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Reject out-of-range kinds early: a rule that can never match a
	// declared kind is a configuration bug, not a runtime condition.
	for _, m := range []map[kind.Kind]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for k := range m {
			if !k.Valid() {
				return nil, fmt.Errorf("mapper: out-of-range kind %s in options", k)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTPMap(b.httpDefaults),
		grpcDefault:  freezeGRPCMap(b.grpcDefaults),
		httpOverride: freezeHTTPMap(b.httpOverride),
		grpcOverride: freezeGRPCMap(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-kind
// defaults and per-kind exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given error kind.
	// Used when no override is present.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given error kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	// These take precedence over defaults.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// fallbackHTTP is used when there is no rule at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no rule at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (explicitly registered);
//  2. per-kind default (library or user overridden);
//  3. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(k kind.Kind) int {
	// 1. Fast path: exact override for this kind.
	if v, ok := m.httpOverride[k]; ok {
		return v
	}

	// 2. Per-kind default.
	if v, ok := m.httpDefault[k]; ok {
		return v
	}

	// 3. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-kind override;
//  2. per-kind default;
//  3. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(k kind.Kind) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}

	// 2. Default for this kind.
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}

	// 3. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same kind.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k),
		GRPC: m.GRPCStatus(k),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular kind.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback).
//
// Example output:
//
//	kind="timeout_error"
//	http: source=override -> 408
//	grpc: source=default -> DEADLINEEXCEEDED(4)
//
// Notes:
//   - source ∈ {override | default | fallback}
func (m *mapper) Explain(k kind.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q\n", k.Ident())

	// ---- HTTP ----
	switch src, httpLine := m.explainHTTP(k); src {
	case "override", "default", "fallback":
		_, _ = fmt.Fprintln(&b, httpLine)
	default:
		// Defensive: unexpected source.
		_, _ = fmt.Fprintln(&b, "http: source=unknown")
	}

	// ---- gRPC ----
	switch src, grpcLine := m.explainGRPC(k); src {
	case "override", "default", "fallback":
		_, _ = fmt.Fprintln(&b, grpcLine)
	default:
		_, _ = fmt.Fprintln(&b, "grpc: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns the origin ("override", "default", "fallback")
// and a formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(k kind.Kind) (source, line string) {
	// 1) exact per-kind override
	if v, ok := m.httpOverride[k]; ok {
		return "override", fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) per-kind default
	if v, ok := m.httpDefault[k]; ok {
		return "default", fmt.Sprintf("http: source=default -> %d", v)
	}

	// 3) global fallback
	return "fallback", fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns the origin ("override", "default", "fallback")
// and a formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(k kind.Kind) (source, line string) {
	// 1) exact per-kind override
	if v, ok := m.grpcOverride[k]; ok {
		return "override", fmt.Sprintf("grpc: source=override -> %s(%d)", grpcName(v), int(v))
	}

	// 2) per-kind default
	if v, ok := m.grpcDefault[k]; ok {
		return "default", fmt.Sprintf("grpc: source=default -> %s(%d)", grpcName(v), int(v))
	}

	// 3) global fallback
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s(%d)", grpcName(m.fallbackGRPC), int(m.fallbackGRPC))
}

// grpcName renders a gRPC code in the uppercase form used by Explain output.
func grpcName(v codes.Code) string {
	return strings.ToUpper(v.String())
}
