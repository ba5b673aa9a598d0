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

package book2md

import (
	"fmt"
	"strings"
)

// IsEmpty reports whether no metadata field is set.
func (m Metadata) IsEmpty() bool {
	return m.Title == "" && len(m.Authors) == 0 && m.Publisher == "" &&
		m.Language == "" && m.Description == ""
}

// FormatMetadata renders the metadata block that heads the README or the
// single output file. It ends with a horizontal rule, or is empty when m has
// no fields.
func FormatMetadata(m Metadata) string {
	if m.IsEmpty() {
		return ""
	}

	var b strings.Builder
	if m.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", m.Title)
	}
	if len(m.Authors) > 0 {
		fmt.Fprintf(&b, "**Author:** %s\n", strings.Join(m.Authors, ", "))
	}
	if m.Publisher != "" {
		fmt.Fprintf(&b, "**Publisher:** %s\n", m.Publisher)
	}
	if m.Language != "" {
		fmt.Fprintf(&b, "**Language:** %s\n", m.Language)
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "\n> %s\n", m.Description)
	}
	b.WriteString("\n---\n\n")
	return b.String()
}
