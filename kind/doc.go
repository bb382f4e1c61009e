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

// Package kind defines the closed taxonomy of dflags error kinds.
//
// A "kind" is the machine-readable classification of an error, such as
// ValueError, TimeoutError or ZeroDivisionError. Unlike an open code
// registry, the taxonomy is CLOSED: there are exactly seventeen kinds,
// they are declared in this package, and no other kind can exist. Kinds
// are meant to be:
//
//   - stable across releases (their numeric values and names never change);
//   - cheap to carry (a single unsigned byte);
//   - suitable for switch dispatch, logging, JSON/proto payloads and for
//     lookup in transport mappers.
//
// Every kind has two fixed textual forms: the CamelCase display name
// returned by String ("ValueError"), used in formatted error text, and
// the snake_case identifier returned by Ident ("value_error"), used in
// machine-facing payloads.
//
// IMPORTANT: Generic is the zero value. An error that was never
// classified explicitly is a GenericError, not an invalid state.
package kind
