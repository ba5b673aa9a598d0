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
	"io"
	"strings"

	"github.com/extrame/xls"
)

// XlsConverter handles legacy XLS workbooks. Each non-empty sheet becomes a
// chapter.
type XlsConverter struct {
	book2md *Book2MD
}

// NewXlsConverter creates a new XlsConverter.
func NewXlsConverter(b *Book2MD) *XlsConverter {
	return &XlsConverter{book2md: b}
}

func (c *XlsConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".xls" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/vnd.ms-excel")
}

func (c *XlsConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*Result, error) {
	wb, err := xls.OpenReader(reader, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open XLS: %w", err)
	}

	var chapters []Chapter
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}

		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for col := 0; col < row.LastCol(); col++ {
				cells = append(cells, row.Col(col))
			}
			rows = append(rows, cells)
		}
		if len(rows) == 0 {
			continue
		}

		md, err := renderSheet(name, rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, Chapter{Title: name, Markdown: md})
	}

	return &Result{Chapters: chapters}, nil
}
