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

// Package fixedfmt implements a minimal, bounded text formatter.
//
// The formatter recognizes a single verb, "%s", substituted from string
// arguments in order. Everything else in the format string, including
// unrecognized verbs and '%' runs with no argument left, is copied
// through literally. Arguments are never re-scanned for verbs.
//
// Output is written into a caller-provided buffer and silently truncated
// at its capacity, so formatting can never fail and never allocates.
// This makes it suitable for rendering error text on paths that must not
// touch the heap: the caller brings a stack buffer and decides what to
// do with the bytes.
package fixedfmt

// Format writes format into dst, replacing each "%s" verb with the next
// argument, and returns the number of bytes written.
//
// Writing stops when dst is full; the remainder of the output is
// discarded. A "%s" with no argument left is copied literally. Extra
// arguments are ignored.
func Format(dst []byte, format string, args ...string) int {
	n := 0
	arg := 0
	for i := 0; i < len(format) && n < len(dst); i++ {
		if format[i] == '%' && i+1 < len(format) && format[i+1] == 's' && arg < len(args) {
			n += copy(dst[n:], args[arg])
			arg++
			i++
			continue
		}
		dst[n] = format[i]
		n++
	}
	return n
}
