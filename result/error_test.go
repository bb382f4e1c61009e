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
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/dflags/kind"
)

func TestError_ZeroValue(t *testing.T) {
	var e Error
	if e.Kind != kind.Generic {
		t.Fatalf("zero Error Kind = %v, want Generic", e.Kind)
	}
	if e.Message != "" {
		t.Fatalf("zero Error Message = %q, want empty", e.Message)
	}
	if got := e.String(); got != "GenericError: " {
		t.Fatalf("zero Error String() = %q, want %q", got, "GenericError: ")
	}
}

func TestNewError(t *testing.T) {
	e := NewError(kind.Key, "missing key: user_id")
	if e.Kind != kind.Key || e.Message != "missing key: user_id" {
		t.Fatalf("NewError = %+v", e)
	}
}

func TestError_String(t *testing.T) {
	e := NewError(kind.ZeroDivision, "division by zero")
	if got := e.String(); got != "ZeroDivisionError: division by zero" {
		t.Fatalf("String() = %q, want %q", got, "ZeroDivisionError: division by zero")
	}
}

func TestError_String_AllKinds(t *testing.T) {
	tests := []struct {
		k    kind.Kind
		want string
	}{
		{kind.Generic, "GenericError: test message"},
		{kind.Arithmetic, "ArithmeticError: test message"},
		{kind.FloatingPoint, "FloatingPointError: test message"},
		{kind.Overflow, "OverflowError: test message"},
		{kind.ZeroDivision, "ZeroDivisionError: test message"},
		{kind.Assertion, "AssertionError: test message"},
		{kind.Attribute, "AttributeError: test message"},
		{kind.Index, "IndexError: test message"},
		{kind.Key, "KeyError: test message"},
		{kind.OS, "OSError: test message"},
		{kind.Timeout, "TimeoutError: test message"},
		{kind.Runtime, "RuntimeError: test message"},
		{kind.NotImplemented, "NotImplementedError: test message"},
		{kind.Syntax, "SyntaxError: test message"},
		{kind.System, "SystemError: test message"},
		{kind.Type, "TypeError: test message"},
		{kind.Value, "ValueError: test message"},
	}
	for _, tt := range tests {
		t.Run(tt.k.String(), func(t *testing.T) {
			got := NewError(tt.k, "test message").String()
			if got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_String_EmptyMessage(t *testing.T) {
	e := NewError(kind.Runtime, "")
	if got := e.String(); got != "RuntimeError: " {
		t.Fatalf("String() = %q, want %q", got, "RuntimeError: ")
	}
}

func TestError_String_Truncation(t *testing.T) {
	long := strings.Repeat("A", 300)
	e := NewError(kind.Runtime, long)

	got := e.String()
	if len(got) != bufSize {
		t.Fatalf("truncated output is %d bytes, want %d", len(got), bufSize)
	}
	if !strings.HasPrefix(got, "RuntimeError: ") {
		t.Fatalf("truncated output lost its prefix: %q", got[:20])
	}
	if body := got[len("RuntimeError: "):]; body != strings.Repeat("A", bufSize-len("RuntimeError: ")) {
		t.Fatalf("truncated body corrupted: %q", body)
	}
}

func TestError_String_FitsExactly(t *testing.T) {
	// Prefix "RuntimeError: " is 14 bytes; a 242-byte message fills the
	// buffer to the last byte without truncation.
	msg := strings.Repeat("B", bufSize-len("RuntimeError: "))
	got := NewError(kind.Runtime, msg).String()
	if len(got) != bufSize {
		t.Fatalf("output is %d bytes, want %d", len(got), bufSize)
	}
	if !strings.HasSuffix(got, "B") {
		t.Fatalf("output end corrupted: %q", got[len(got)-8:])
	}
}

func TestError_String_VerbsInMessageStayLiteral(t *testing.T) {
	e := NewError(kind.Generic, "Error with %s and %d format specifiers")
	want := "GenericError: Error with %s and %d format specifiers"
	if got := e.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestError_String_SpecialCharacters(t *testing.T) {
	e := NewError(kind.Syntax, "line 1\n\tindented: 100%")
	want := "SyntaxError: line 1\n\tindented: 100%"
	if got := e.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestError_ErrorInterface(t *testing.T) {
	var err error = NewError(kind.Value, "Invalid enum value")
	if err.Error() != "ValueError: Invalid enum value" {
		t.Fatalf("Error() = %q", err.Error())
	}

	wrapped := fmt.Errorf("flag update rejected: %w", err)
	var de Error
	if !errors.As(wrapped, &de) {
		t.Fatalf("errors.As failed on %v", wrapped)
	}
	if de.Kind != kind.Value || de.Message != "Invalid enum value" {
		t.Fatalf("recovered Error = %+v", de)
	}
}

func TestError_ErrorKind(t *testing.T) {
	e := NewError(kind.Overflow, "too big")
	if e.ErrorKind() != kind.Overflow {
		t.Fatalf("ErrorKind() = %v, want %v", e.ErrorKind(), kind.Overflow)
	}
}

func TestError_WithHelpers(t *testing.T) {
	orig := NewError(kind.Key, "missing key")

	reclassified := orig.WithKind(kind.Value)
	if reclassified.Kind != kind.Value || reclassified.Message != "missing key" {
		t.Fatalf("WithKind = %+v", reclassified)
	}

	reworded := orig.WithMessage("profile not found")
	if reworded.Kind != kind.Key || reworded.Message != "profile not found" {
		t.Fatalf("WithMessage = %+v", reworded)
	}

	// Both helpers copy; the original stays untouched.
	if orig.Kind != kind.Key || orig.Message != "missing key" {
		t.Fatalf("original mutated: %+v", orig)
	}
}

func TestError_Comparable(t *testing.T) {
	a := NewError(kind.Index, "out of range")
	b := NewError(kind.Index, "out of range")
	c := NewError(kind.Index, "different")
	if a != b {
		t.Fatal("identical errors must compare equal")
	}
	if a == c {
		t.Fatal("distinct errors must compare unequal")
	}
}

// Rendering must be safe from concurrent goroutines: every call formats
// through its own stack buffer, so parallel renders never interleave.
func TestError_String_Concurrent(t *testing.T) {
	const goroutines = 8
	const iterations = 200

	var wg sync.WaitGroup
	errCh := make(chan string, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			e := NewError(kind.Runtime, fmt.Sprintf("goroutine %d failure", id))
			want := fmt.Sprintf("RuntimeError: goroutine %d failure", id)
			for i := 0; i < iterations; i++ {
				if got := e.String(); got != want {
					errCh <- fmt.Sprintf("goroutine %d: got %q, want %q", id, got, want)
					return
				}
			}
		}(g)
	}

	wg.Wait()
	close(errCh)
	for msg := range errCh {
		t.Fatal(msg)
	}
}

func TestError_String_SingleAlloc(t *testing.T) {
	e := NewError(kind.Value, "Invalid enum value")
	allocs := testing.AllocsPerRun(100, func() {
		_ = e.String()
	})
	// The returned string is the only allocation; formatting itself works
	// in a stack buffer.
	if allocs > 1 {
		t.Fatalf("String() allocates %v times per run, want at most 1", allocs)
	}
}

func BenchmarkError_String(b *testing.B) {
	e := NewError(kind.Value, "Invalid enum value for FlagSet")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.String()
	}
}
