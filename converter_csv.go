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
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/nicholasgasior/book2md/internal/docmodel"
	"github.com/nicholasgasior/book2md/internal/render"
)

// CsvConverter handles CSV files as a single table chapter.
type CsvConverter struct {
	book2md *Book2MD
}

// NewCsvConverter creates a new CsvConverter.
func NewCsvConverter(b *Book2MD) *CsvConverter {
	return &CsvConverter{book2md: b}
}

func (c *CsvConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".csv" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "text/csv") || strings.HasPrefix(mime, "application/csv")
}

func (c *CsvConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	r := csv.NewReader(strings.NewReader(decodeText(data, info.Charset)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}

	md, err := renderSheet("", records)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSuffix(info.Filename, info.Extension)
	return &Result{
		Metadata: Metadata{Title: title},
		Chapters: []Chapter{{Title: title, Markdown: md}},
	}, nil
}

// renderSheet renders rows as a table, preceded by a level-2 heading when name
// is set. The first row becomes the header row.
func renderSheet(name string, rows [][]string) (string, error) {
	body := &docmodel.Container{}
	if name != "" {
		body.Children = append(body.Children, &docmodel.Paragraph{
			StyleID: "Heading2",
			Inlines: []docmodel.Inline{docmodel.NewText(name, 0)},
		})
	}

	tbl := &docmodel.Table{}
	for _, row := range rows {
		cells := make([]docmodel.Cell, len(row))
		for i, v := range row {
			cells[i] = docmodel.Cell{Paragraphs: []docmodel.Paragraph{
				docmodel.TextParagraph(strings.ReplaceAll(v, "|", `\|`)),
			}}
		}
		tbl.Rows = append(tbl.Rows, docmodel.Row{Cells: cells})
	}
	body.Children = append(body.Children, tbl)

	md, err := render.New(nil, nil).Convert(body)
	if err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	return md, nil
}
