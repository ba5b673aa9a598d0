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

// Package docx reads a WordprocessingML package into the document model.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"

	"github.com/nicholasgasior/book2md/internal/docmodel"
	"github.com/nicholasgasior/book2md/internal/ooxml"
)

const (
	documentPart  = "word/document.xml"
	numberingPart = "word/numbering.xml"
	stylesPart    = "word/styles.xml"
	mediaDir      = "word/media/"
)

// Media is an embedded binary part of the package.
type Media struct {
	Name string // full part name, e.g. word/media/image1.png
	Data []byte
}

// Document is a parsed DOCX package.
type Document struct {
	Body          *docmodel.Container
	Relationships docmodel.Relationships
	Numbering     *docmodel.Numbering
	Properties    ooxml.Properties
	Media         []Media
}

// Read parses the main document part of zr together with its relationships,
// list definitions, styles, properties and media.
func Read(zr *zip.Reader) (*Document, error) {
	data, err := ooxml.ReadPart(zr, documentPart)
	if err != nil {
		return nil, fmt.Errorf("docx: %w", err)
	}

	styles := styleNames{}
	if raw, err := ooxml.ReadPart(zr, stylesPart); err == nil {
		if styles, err = parseStyles(raw); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, ooxml.ErrPartNotFound) {
		return nil, fmt.Errorf("docx: %w", err)
	}

	body, err := parseBody(data, styles)
	if err != nil {
		return nil, err
	}

	rels, err := ooxml.ParseRelationships(zr, ooxml.RelsPathFor(documentPart))
	if err != nil {
		return nil, fmt.Errorf("docx: %w", err)
	}

	numbering := docmodel.NewNumbering()
	if raw, err := ooxml.ReadPart(zr, numberingPart); err == nil {
		if numbering, err = parseNumbering(raw); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, ooxml.ErrPartNotFound) {
		return nil, fmt.Errorf("docx: %w", err)
	}

	media, err := readMedia(zr)
	if err != nil {
		return nil, err
	}

	return &Document{
		Body:          body,
		Relationships: ooxml.Targets(rels),
		Numbering:     numbering,
		Properties:    ooxml.ReadProperties(zr),
		Media:         media,
	}, nil
}

func readMedia(zr *zip.Reader) ([]Media, error) {
	var media []Media
	for _, f := range ooxml.PartsUnder(zr, mediaDir) {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("docx: open %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("docx: read %s: %w", f.Name, err)
		}
		media = append(media, Media{Name: f.Name, Data: data})
	}
	return media, nil
}
