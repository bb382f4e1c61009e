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

package fixedfmt

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []string
		want   string
	}{
		{"no verbs", "plain text", nil, "plain text"},
		{"single verb", "%s!", []string{"hello"}, "hello!"},
		{"two verbs", "%s: %s", []string{"KeyError", "missing"}, "KeyError: missing"},
		{"verb at end", "count=%s", []string{"3"}, "count=3"},
		{"empty arg", "[%s]", []string{""}, "[]"},
		{"extra args ignored", "%s", []string{"a", "b", "c"}, "a"},
		{"missing arg stays literal", "%s and %s", []string{"one"}, "one and %s"},
		{"unknown verb stays literal", "%d items", []string{"x"}, "%d items"},
		{"lone percent", "100%", nil, "100%"},
		{"percent at end with args", "100%", []string{"y"}, "100%"},
		{"verb inside arg not rescanned", "%s", []string{"%s"}, "%s"},
		{"empty format", "", []string{"a"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [64]byte
			n := Format(buf[:], tt.format, tt.args...)
			got := string(buf[:n])
			if got != tt.want {
				t.Fatalf("Format(%q, %q) = %q, want %q", tt.format, tt.args, got, tt.want)
			}
		})
	}
}

func TestFormat_Truncation(t *testing.T) {
	long := strings.Repeat("x", 100)

	var buf [16]byte
	n := Format(buf[:], "%s", long)
	if n != 16 {
		t.Fatalf("Format wrote %d bytes, want 16", n)
	}
	if string(buf[:n]) != strings.Repeat("x", 16) {
		t.Fatalf("Format truncated output = %q", string(buf[:n]))
	}

	// Prefix must survive when the buffer is larger than the prefix but
	// smaller than the full output.
	var buf2 [10]byte
	n2 := Format(buf2[:], "ab: %s", long)
	if string(buf2[:n2]) != "ab: xxxxxx" {
		t.Fatalf("Format = %q, want %q", string(buf2[:n2]), "ab: xxxxxx")
	}
}

func TestFormat_EmptyBuffer(t *testing.T) {
	n := Format(nil, "%s", "ignored")
	if n != 0 {
		t.Fatalf("Format(nil, ...) = %d, want 0", n)
	}
}

func TestFormat_ZeroAlloc(t *testing.T) {
	var buf [64]byte
	allocs := testing.AllocsPerRun(100, func() {
		Format(buf[:], "%s: %s", "ValueError", "Invalid enum value")
	})
	if allocs != 0 {
		t.Fatalf("Format allocates %v times per run, want 0", allocs)
	}
}
