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

// inlines renders the inline content of a paragraph.
func (r *Renderer) inlines(items []docmodel.Inline) string {
	var b strings.Builder
	for _, item := range items {
		switch it := item.(type) {
		case *docmodel.Run:
			if it != nil {
				b.WriteString(r.run(it))
			}
		case *docmodel.Hyperlink:
			if it != nil {
				b.WriteString(r.hyperlink(it))
			}
		}
	}
	return b.String()
}

func (r *Renderer) run(run *docmodel.Run) string {
	return formatRun(r.runText(run), run.Format)
}

// runText concatenates the segments of run without applying emphasis.
func (r *Renderer) runText(run *docmodel.Run) string {
	var b strings.Builder
	for _, seg := range run.Segments {
		switch s := seg.(type) {
		case docmodel.Text:
			b.WriteString(string(s))
		case docmodel.LineBreak:
			b.WriteByte('\n')
		case docmodel.Tab:
			b.WriteByte('\t')
		case docmodel.Media:
			if path, ok := r.ResolveMedia(s.EmbedID); ok {
				b.WriteString("![")
				b.WriteString(s.AltText)
				b.WriteString("](")
				b.WriteString(path)
				b.WriteString(")")
			}
		}
	}
	return b.String()
}

// formatRun wraps text in emphasis markers. Strike is applied to the text
// first and bold/italic around it, giving e.g. "**~~x~~**".
func formatRun(text string, f docmodel.Format) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	if f.Has(docmodel.Strike) {
		text = "~~" + text + "~~"
	}

	switch {
	case f.Has(docmodel.Bold | docmodel.Italic):
		text = "***" + text + "***"
	case f.Has(docmodel.Bold):
		text = "**" + text + "**"
	case f.Has(docmodel.Italic):
		text = "*" + text + "*"
	}
	return text
}

func (r *Renderer) hyperlink(h *docmodel.Hyperlink) string {
	var display string
	if h.Content != nil {
		display = r.runText(h.Content)
	}

	target, ok := r.ResolveHyperlink(h.Anchor, h.RelID)
	switch {
	case !ok:
		return display
	case display == "":
		return target
	default:
		return "[" + display + "](" + target + ")"
	}
}
