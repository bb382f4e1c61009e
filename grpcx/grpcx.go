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

// Package grpcx adapts dflags errors to the gRPC transport.
//
// The server interceptor recognizes result.Error values escaping from
// handlers, resolves their kind through an apis.Mapper, and returns a proper
// gRPC status carrying a google.rpc.ErrorInfo detail. Errors that are not
// dflags errors pass through untouched.
package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dflags/apis"
	"dirpx.dev/dflags/result"
)

// Domain is the value set in the ErrorInfo.Domain field of outgoing error
// details. Clients can use it to recognize details produced by this package.
const Domain = "dirpx.dev"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// result.Error into gRPC errors with a google.rpc.ErrorInfo detail.
//
// The provided apis.Mapper is used to map error kinds into transport status
// codes.
//
// Only errors that carry a result.Error (directly or wrapped) are converted;
// anything else is returned as-is so that statuses produced elsewhere are
// not rewritten.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de result.Error
		if !errors.As(err, &de) {
			// Not ours; return as-is.
			return nil, err
		}

		st := m.Status(de.Kind)

		base := gstatus.New(st.GRPC, de.Message)

		detail := &errdetails.ErrorInfo{
			// ErrorInfo reasons are UPPER_SNAKE_CASE by convention.
			Reason: strings.ToUpper(de.Kind.Ident()),
			Domain: Domain,
			Metadata: map[string]string{
				"kind": de.Kind.String(),
			},
		}

		// Try to attach the detail. If it fails, return the base status.
		if with, derr := base.WithDetails(detail); derr == nil {
			return nil, with.Err()
		}

		return nil, base.Err()
	}
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
