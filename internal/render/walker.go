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
	"errors"

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

// ErrNilDocument is returned when Render is called without a document root.
var ErrNilDocument = errors.New("render: nil document root")

// Render walks root in document order and returns the raw Markdown stream.
// List counters start from zero on every call.
func (r *Renderer) Render(root docmodel.Node) (string, error) {
	if isNil(root) {
		return "", ErrNilDocument
	}

	p := &pass{
		Renderer: r,
		lists:    newNumberingResolver(r.numbering),
	}
	p.walk(root)
	return p.out.String(), nil
}

func (p *pass) walk(n docmodel.Node) {
	switch n := n.(type) {
	case *docmodel.Paragraph:
		if n != nil {
			p.paragraph(n)
		}
	case *docmodel.Table:
		if n != nil {
			p.out.WriteString(RenderTable(p.tableRows(n)))
		}
	case *docmodel.Container:
		if n == nil {
			return
		}
		for _, child := range n.Children {
			p.walk(child)
		}
	default:
		// Unknown and future node kinds render nothing.
	}
}

func isNil(n docmodel.Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *docmodel.Paragraph:
		return v == nil
	case *docmodel.Table:
		return v == nil
	case *docmodel.Container:
		return v == nil
	case *docmodel.Unknown:
		return v == nil
	}
	return false
}
