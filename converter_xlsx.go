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

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// XlsxConverter handles XLSX workbooks. Each non-empty sheet becomes a
// chapter.
type XlsxConverter struct {
	book2md *Book2MD
}

// NewXlsxConverter creates a new XlsxConverter.
func NewXlsxConverter(b *Book2MD) *XlsxConverter {
	return &XlsxConverter{book2md: b}
}

func (c *XlsxConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".xlsx" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (c *XlsxConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*Result, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open XLSX: %w", err)
	}
	defer f.Close()

	var chapters []Chapter
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			if c.book2md != nil {
				c.book2md.logger.Warn("skipping sheet", zap.String("sheet", sheet), zap.Error(err))
			}
			continue
		}
		if len(rows) == 0 {
			continue
		}

		md, err := renderSheet(sheet, rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, Chapter{Title: sheet, Markdown: md})
	}

	meta := Metadata{}
	if props, err := f.GetDocProps(); err == nil {
		meta.Title = props.Title
		meta.Description = props.Description
		meta.Language = props.Language
		if props.Creator != "" {
			meta.Authors = []string{props.Creator}
		}
	}

	return &Result{Metadata: meta, Chapters: chapters}, nil
}
