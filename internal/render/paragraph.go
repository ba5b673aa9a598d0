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

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

var namedHeadingStyles = map[string]int{
	"Title":    1,
	"title":    1,
	"Subtitle": 2,
	"subtitle": 2,
}

var headingStylePrefixes = []string{"Heading", "heading", "heading "}

// HeadingLevel returns the heading level (1-6) for a paragraph style id, or 0
// if the style is not a heading.
func HeadingLevel(styleID string) int {
	if level, ok := namedHeadingStyles[styleID]; ok {
		return level
	}
	for _, prefix := range headingStylePrefixes {
		rest, ok := strings.CutPrefix(styleID, prefix)
		if ok && len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
			return int(rest[0] - '0')
		}
	}
	return 0
}

// paragraph emits a heading, a list item or a plain paragraph, in that order
// of precedence.
func (p *pass) paragraph(para *docmodel.Paragraph) {
	level := HeadingLevel(para.StyleID)
	text := strings.TrimSpace(p.inlines(para.Inlines))

	if text == "" && level == 0 && para.Numbering == nil {
		p.out.WriteString("\n")
		return
	}

	switch {
	case level > 0:
		p.out.WriteString(strings.Repeat("#", level))
		p.out.WriteString(" ")
		p.out.WriteString(text)
		p.out.WriteString("\n\n")

	case para.Numbering != nil:
		ref := para.Numbering
		p.out.WriteString(strings.Repeat("  ", max(ref.Level, 0)))
		p.out.WriteString(p.lists.Marker(ref.ListID, ref.Level))
		p.out.WriteString(" ")
		p.out.WriteString(text)
		p.out.WriteString("\n")

	default:
		p.out.WriteString(text)
		p.out.WriteString("\n\n")
	}
}
