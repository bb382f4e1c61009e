package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dirpx.dev/dflags/kind"
	"dirpx.dev/dflags/mapper"
	"dirpx.dev/dflags/result"
)

func newWriter(t *testing.T, opts ...mapper.Option) Writer {
	t.Helper()
	m, err := mapper.New(opts...)
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

// decodeBody unmarshals the response body. protojson output is not
// byte-stable (it deliberately varies whitespace), so tests must compare
// decoded values, never raw bytes.
func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("response body is not JSON: %v\n%s", err, body)
	}
	return m
}

func TestWrite_ResolvesStatusAndBody(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, result.NewError(kind.Key, "missing key"))

	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}

	body := decodeBody(t, rec.Body.Bytes())
	if body["code"] != float64(5) { // codes.NotFound
		t.Fatalf("code = %v, want 5", body["code"])
	}
	if body["message"] != "missing key" {
		t.Fatalf("message = %v", body["message"])
	}

	details, ok := body["details"].([]any)
	if !ok || len(details) != 1 {
		t.Fatalf("details = %v", body["details"])
	}
	info, ok := details[0].(map[string]any)
	if !ok {
		t.Fatalf("detail shape = %T", details[0])
	}
	if info["@type"] != "type.googleapis.com/google.rpc.ErrorInfo" {
		t.Fatalf("@type = %v", info["@type"])
	}
	if info["reason"] != "KEY_ERROR" {
		t.Fatalf("reason = %v", info["reason"])
	}
	if info["domain"] != domain {
		t.Fatalf("domain = %v", info["domain"])
	}
	meta, _ := info["metadata"].(map[string]any)
	if meta["kind"] != "KeyError" {
		t.Fatalf("metadata kind = %v", meta["kind"])
	}
}

func TestWrite_HonorsOverrides(t *testing.T) {
	w := newWriter(t, mapper.WithHTTPOverride(kind.Timeout, 408))
	rec := httptest.NewRecorder()

	w.Write(rec, result.NewError(kind.Timeout, "deadline exceeded"))

	if rec.Code != 408 {
		t.Fatalf("status = %d, want 408", rec.Code)
	}
}

func TestWrite_ZeroErrorDegradesToGeneric(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	var e result.Error
	w.Write(rec, e)

	if rec.Code != 500 {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec.Body.Bytes())
	if body["code"] != float64(2) { // codes.Unknown
		t.Fatalf("code = %v, want 2", body["code"])
	}
}

func TestWriteStatus(t *testing.T) {
	w := newWriter(t)

	rec := httptest.NewRecorder()
	if w.WriteStatus(rec, result.OK()) {
		t.Fatal("WriteStatus must not produce a response for success")
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("body written for success: %s", rec.Body.Bytes())
	}

	rec = httptest.NewRecorder()
	if !w.WriteStatus(rec, result.Fail(kind.Value, "bad flag")) {
		t.Fatal("WriteStatus must produce a response for failure")
	}
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec.Body.Bytes())
	if body["message"] != "bad flag" {
		t.Fatalf("message = %v", body["message"])
	}
}
