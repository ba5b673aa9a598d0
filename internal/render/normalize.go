// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package render

import (
	"regexp"
	"strings"
	"unicode"
)

var reMultipleNewlines = regexp.MustCompile(`\n{3,}`)

// Normalize collapses blank-line runs, strips trailing whitespace and ends
// non-empty output with exactly one newline. Normalize(Normalize(s)) ==
// Normalize(s).
func Normalize(s string) string {
	s = reMultipleNewlines.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	s = strings.Join(lines, "\n")

	// Lines that held only whitespace are empty now and may form new runs.
	s = reMultipleNewlines.ReplaceAllString(s, "\n\n")

	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if s == "" {
		return ""
	}
	return s + "\n"
}
