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

// Package adapter converts the concrete error type carried by results into
// the portable view structures declared in dflags/apis. It is the bridge
// that transport layers (dflags/httpx, dflags/grpcx) and logging code use so
// that they never depend on the concrete representation.
package adapter

import (
	"dirpx.dev/dflags/apis"
	"dirpx.dev/dflags/result"
)

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical kind and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(e result.Error, st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Kind:       e.Kind.Ident(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts a domain-level error into a public ErrorView. This function
// performs no automatic redaction or filtering; it exposes exactly what the
// error instance contains.
func ToView(e result.Error) apis.ErrorView {
	return apis.ErrorView{
		Kind:    e.Kind.Ident(),
		Message: e.Message,
	}
}
