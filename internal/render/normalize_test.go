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
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapse blank lines", "a\n\n\n\nb", "a\n\nb\n"},
		{"trailing whitespace per line", "a  \nb\t\n", "a\nb\n"},
		{"single trailing newline", "a\n\n\n", "a\n"},
		{"adds trailing newline", "a", "a\n"},
		{"empty", "", ""},
		{"whitespace only", " \n\t\n  ", ""},
		{"whitespace lines between paragraphs", "a\n \n \nb", "a\n\nb\n"},
		{"keeps leading indentation", "  - item\n    - nested\n", "  - item\n    - nested\n"},
		{"crlf line endings", "a\r\n\r\n\r\n\r\nb\r\n", "a\n\nb\n"},
		{"tight list untouched", "- a\n- b\n\nnext\n", "- a\n- b\n\nnext\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

// normalizeSeeds are inputs mixing blank-line runs, trailing whitespace and
// carriage returns.
var normalizeSeeds = []string{
	"",
	"\n",
	"a\n\n\n\nb",
	"a\n \n \n \nb",
	"\n\n\n\nleading",
	"x \t\n\n\n  \n\t\ny   ",
	"| a | b |\n| --- | --- |\n\n\n\n",
	"# Title\n\n\n## Sub\n\n- one\n- two\n\n\n\n",
	"a \n \n\nb",
	"\r\n\r\n\r\n",
	"a\u00a0\n\u0085\n\nb",
	strings.Repeat("line  \n\n\n", 20),
}

// checkNormalized asserts the properties every Normalize output has.
func checkNormalized(t *testing.T, in string) {
	t.Helper()
	once := Normalize(in)
	require.Equal(t, once, Normalize(once), "input %q", in)
	require.NotContains(t, once, "\n\n\n", "input %q", in)
	if once == "" {
		return
	}
	require.True(t, strings.HasSuffix(once, "\n"), "input %q", in)
	require.False(t, strings.HasSuffix(once, "\n\n"), "input %q", in)
	for _, line := range strings.Split(once, "\n") {
		require.Equal(t, strings.TrimRightFunc(line, unicode.IsSpace), line, "input %q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range normalizeSeeds {
		checkNormalized(t, in)
	}
}

func FuzzNormalize(f *testing.F) {
	for _, in := range normalizeSeeds {
		f.Add(in)
	}
	f.Fuzz(func(t *testing.T, in string) {
		checkNormalized(t, in)
	})
}
