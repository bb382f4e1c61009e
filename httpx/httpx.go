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

// Package httpx adapts dflags errors to plain HTTP responses.
//
// The response body is a canonical google.rpc.Status JSON document carrying
// the gRPC-aligned code, the error message, and a google.rpc.ErrorInfo
// detail, so HTTP and gRPC clients see the same error shape. The HTTP status
// line is resolved separately through the apis.Mapper.
package httpx

import (
	"net/http"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/dflags/apis"
	"dirpx.dev/dflags/result"
)

// domain mirrors grpcx.Domain for the ErrorInfo details emitted over HTTP.
const domain = "dirpx.dev"

// Writer is a thin adapter that knows how to turn a result.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the error as a google.rpc.Status JSON document and writes
// it to the response writer. The HTTP status is resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error is exposed as-is. Higher-level handlers should apply policies
// if needed.
func (w Writer) Write(rw http.ResponseWriter, e result.Error) {
	st := w.Mapper.Status(e.Kind)

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: e.Message,
	}

	info := &errdetails.ErrorInfo{
		// ErrorInfo reasons are UPPER_SNAKE_CASE by convention.
		Reason: strings.ToUpper(e.Kind.Ident()),
		Domain: domain,
		Metadata: map[string]string{
			"kind": e.Kind.String(),
		},
	}
	// If packing fails the body simply carries no detail.
	if anyInfo, err := anypb.New(info); err == nil {
		body.Details = append(body.Details, anyInfo)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of nested structures, field names (json_name),
	// and well-known types.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}

// WriteStatus writes the failure carried by st, if any. It reports whether a
// response was produced, so handlers can chain it:
//
//	if httpx.Writer{Mapper: m}.WriteStatus(rw, st) {
//	    return
//	}
func (w Writer) WriteStatus(rw http.ResponseWriter, st result.Status) bool {
	e, failed := st.Err()
	if !failed {
		return false
	}
	w.Write(rw, e)
	return true
}
