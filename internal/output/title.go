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

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ChapterTitle returns title when set, otherwise the text of the first
// level-1 heading in md, otherwise "Chapter N" for the zero-based index.
func ChapterTitle(title, md string, index int) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if h := firstHeading(md); h != "" {
		return h
	}
	return fmt.Sprintf("Chapter %d", index+1)
}

func firstHeading(md string) string {
	source := []byte(md)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := node.(*ast.Heading); ok && h.Level == 1 {
			if t := nodeText(h, source); t != "" {
				title = t
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return title
}

func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else if child.HasChildren() {
			buf.WriteString(nodeText(child, source))
		}
	}
	return strings.TrimSpace(buf.String())
}
