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

const cellBreak = "<br>"

// RenderTable renders rows of cell text as a GFM pipe table followed by a
// blank line. The first row is the header. Rows without cells are dropped;
// if none remain the result is empty.
func RenderTable(rows [][]string) string {
	var kept [][]string
	cols := 0
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		kept = append(kept, row)
		cols = max(cols, len(row))
	}
	if len(kept) == 0 {
		return ""
	}

	var b strings.Builder
	for i, row := range kept {
		b.WriteByte('|')
		for j := 0; j < cols; j++ {
			b.WriteByte(' ')
			if j < len(row) {
				b.WriteString(row[j])
			}
			b.WriteString(" |")
		}
		b.WriteByte('\n')

		if i == 0 {
			b.WriteByte('|')
			for j := 0; j < cols; j++ {
				b.WriteString(" --- |")
			}
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func (p *pass) tableRows(t *docmodel.Table) [][]string {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, p.cellText(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}

// cellText joins the non-empty paragraphs of a cell with <br>. Raw newlines
// would end the table row, so line breaks become <br> as well.
func (p *pass) cellText(cell docmodel.Cell) string {
	var parts []string
	for i := range cell.Paragraphs {
		text := strings.TrimSpace(p.inlines(cell.Paragraphs[i].Inlines))
		if text == "" {
			continue
		}
		parts = append(parts, strings.ReplaceAll(text, "\n", cellBreak))
	}
	return strings.Join(parts, cellBreak)
}
