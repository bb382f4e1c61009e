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

package apis

import "dirpx.dev/dflags/kind"

// KindedError represents an error that is classified into a well-defined,
// machine-readable error *kind*.
//
// A kind denotes a broad failure category, such as:
//   - kind.Value        - an argument had the right type but a bad value,
//   - kind.Key          - a lookup key does not exist,
//   - kind.Timeout      - an operation exceeded its deadline,
//   - kind.Runtime      - an unexpected internal failure.
//
// Kinds form a closed, enumerable taxonomy. They are the primary value that
// higher-level adapters (HTTP, gRPC) use to decide which status code to
// return to the client.
//
// Implementations are expected to return a valid kind, i.e. one of the
// constants declared by the dflags/kind package. Adapters should treat an
// out-of-range kind the same as kind.Generic: as an internal server error at
// the boundary. Callers should not try to "fix" or "guess" the value here.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable error kind.
	ErrorKind() kind.Kind
}
