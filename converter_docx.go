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
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nicholasgasior/book2md/internal/docx"
	"github.com/nicholasgasior/book2md/internal/ooxml"
	"github.com/nicholasgasior/book2md/internal/render"
)

// DocxConverter handles DOCX files. The whole body becomes a single chapter.
type DocxConverter struct {
	book2md *Book2MD
}

// NewDocxConverter creates a new DocxConverter.
func NewDocxConverter(b *Book2MD) *DocxConverter {
	return &DocxConverter{book2md: b}
}

func (c *DocxConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".docx" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
}

func (c *DocxConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read DOCX: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open DOCX ZIP: %w", err)
	}

	doc, err := docx.Read(zr)
	if err != nil {
		if errors.Is(err, ooxml.ErrPartNotFound) || errors.Is(err, docx.ErrNoBody) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPackage, err)
		}
		return nil, err
	}

	assets := make([]asset, 0, len(doc.Media))
	for _, m := range doc.Media {
		assets = append(assets, asset{href: m.Name, data: m.Data})
	}
	images, imageMap := c.book2md.extractImages(assets)

	mediaPrefix := render.DefaultMediaPrefix
	if c.book2md != nil {
		mediaPrefix = c.book2md.mediaPrefix
	}
	r := render.New(doc.Relationships, doc.Numbering,
		render.WithImages(imageMap),
		render.WithMediaPrefix(mediaPrefix))

	md, err := r.Convert(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("render DOCX: %w", err)
	}

	meta := Metadata{
		Title:       doc.Properties.Title,
		Publisher:   doc.Properties.Company,
		Language:    doc.Properties.Language,
		Description: doc.Properties.Description,
	}
	if doc.Properties.Creator != "" {
		meta.Authors = []string{doc.Properties.Creator}
	}

	return &Result{
		Metadata: meta,
		Chapters: []Chapter{{Markdown: md}},
		Images:   images,
	}, nil
}
