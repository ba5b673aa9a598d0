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

package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nicholasgasior/book2md/internal/docmodel"
	"github.com/nicholasgasior/book2md/internal/ooxml"
)

// ErrNoBody is returned when word/document.xml has no w:body element.
var ErrNoBody = errors.New("docx: document has no body")

// bodyParser turns the token stream of word/document.xml into a document
// tree. Each method consumes tokens up to and including the end element of
// the element it was called for.
type bodyParser struct {
	d      *xml.Decoder
	styles styleNames
}

func parseBody(data []byte, styles styleNames) (*docmodel.Container, error) {
	p := &bodyParser{d: xml.NewDecoder(bytes.NewReader(data)), styles: styles}
	for {
		tok, err := p.d.Token()
		if err == io.EOF {
			return nil, ErrNoBody
		}
		if err != nil {
			return nil, fmt.Errorf("docx: parse document: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "body" {
			children, err := p.blocks()
			if err != nil {
				return nil, fmt.Errorf("docx: parse body: %w", err)
			}
			return &docmodel.Container{Children: children}, nil
		}
	}
}

func (p *bodyParser) blocks() ([]docmodel.Node, error) {
	var nodes []docmodel.Node
	for {
		tok, err := p.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node, err := p.block(t)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		case xml.EndElement:
			return nodes, nil
		}
	}
}

func (p *bodyParser) block(se xml.StartElement) (docmodel.Node, error) {
	switch se.Name.Local {
	case "p":
		return p.paragraph()
	case "tbl":
		return p.table()
	case "sdt":
		return p.sdt()
	case "customXml":
		children, err := p.blocks()
		if err != nil {
			return nil, err
		}
		return &docmodel.Container{Children: children}, nil
	default:
		if err := p.d.Skip(); err != nil {
			return nil, err
		}
		return &docmodel.Unknown{Name: se.Name.Local}, nil
	}
}

// sdt keeps the content of a block-level content control and drops its
// properties.
func (p *bodyParser) sdt() (*docmodel.Container, error) {
	c := &docmodel.Container{}
	for {
		tok, err := p.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "sdtContent" {
				if err := p.d.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			children, err := p.blocks()
			if err != nil {
				return nil, err
			}
			c.Children = append(c.Children, children...)
		case xml.EndElement:
			return c, nil
		}
	}
}

func (p *bodyParser) paragraph() (*docmodel.Paragraph, error) {
	para := &docmodel.Paragraph{}
	items, err := p.inlines(para)
	if err != nil {
		return nil, err
	}
	para.Inlines = items
	return para, nil
}

// inlines collects runs and hyperlinks up to the end of the current element.
// Paragraph properties are applied to para when it is non-nil.
func (p *bodyParser) inlines(para *docmodel.Paragraph) ([]docmodel.Inline, error) {
	var items []docmodel.Inline
	for {
		tok, err := p.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if para == nil {
					if err := p.d.Skip(); err != nil {
						return nil, err
					}
					continue
				}
				if err := p.paragraphProps(para); err != nil {
					return nil, err
				}
			case "r":
				run, err := p.run()
				if err != nil {
					return nil, err
				}
				items = append(items, run)
			case "hyperlink":
				link, err := p.hyperlink(t)
				if err != nil {
					return nil, err
				}
				items = append(items, link)
			case "sdt", "sdtContent", "smartTag", "customXml", "ins", "fldSimple":
				nested, err := p.inlines(nil)
				if err != nil {
					return nil, err
				}
				items = append(items, nested...)
			default:
				if err := p.d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return items, nil
		}
	}
}

func (p *bodyParser) paragraphProps(para *docmodel.Paragraph) error {
	var (
		numID, ilvl       string
		hasNumID, hasIlvl bool
	)
	for {
		tok, err := p.d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pStyle":
				if id, ok := attr(t, "val"); ok {
					para.StyleID = p.styles.canonical(id)
				}
			case "numId":
				numID, hasNumID = attr(t, "val")
			case "ilvl":
				ilvl, hasIlvl = attr(t, "val")
			case "numPr":
				continue
			}
			if err := p.d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == "pPr" {
				para.Numbering = numberingRef(numID, hasNumID, ilvl, hasIlvl)
				return nil
			}
		}
	}
}

// numberingRef builds a list reference from w:numPr values. numId 0 removes
// numbering and a missing ilvl means level 0.
func numberingRef(numID string, hasNumID bool, ilvl string, hasIlvl bool) *docmodel.NumberingRef {
	if !hasNumID {
		return nil
	}
	id, err := strconv.Atoi(numID)
	if err != nil || id == 0 {
		return nil
	}
	level := 0
	if hasIlvl {
		level, err = strconv.Atoi(ilvl)
		if err != nil {
			return nil
		}
	}
	return &docmodel.NumberingRef{ListID: id, Level: level}
}

func (p *bodyParser) run() (*docmodel.Run, error) {
	run := &docmodel.Run{}
	for {
		tok, err := p.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				f, err := p.runProps()
				if err != nil {
					return nil, err
				}
				run.Format = f
				continue
			case "t":
				text, err := p.text()
				if err != nil {
					return nil, err
				}
				run.Segments = append(run.Segments, docmodel.Text(text))
				continue
			case "drawing", "pict", "object", "AlternateContent":
				media, ok, err := p.media()
				if err != nil {
					return nil, err
				}
				if ok {
					run.Segments = append(run.Segments, media)
				}
				continue
			case "br", "cr":
				run.Segments = append(run.Segments, docmodel.LineBreak{})
			case "tab":
				run.Segments = append(run.Segments, docmodel.Tab{})
			case "noBreakHyphen":
				run.Segments = append(run.Segments, docmodel.Text("-"))
			}
			if err := p.d.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return run, nil
		}
	}
}

func (p *bodyParser) runProps() (docmodel.Format, error) {
	var f docmodel.Format
	for {
		tok, err := p.d.Token()
		if err != nil {
			return 0, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var flag docmodel.Format
			switch t.Name.Local {
			case "b":
				flag = docmodel.Bold
			case "i":
				flag = docmodel.Italic
			case "strike", "dstrike":
				flag = docmodel.Strike
			}
			if flag != 0 && toggleOn(t) {
				f |= flag
			}
			if err := p.d.Skip(); err != nil {
				return 0, err
			}
		case xml.EndElement:
			return f, nil
		}
	}
}

// toggleOn reads an OOXML on/off property; an absent w:val means on.
func toggleOn(se xml.StartElement) bool {
	v, ok := attr(se, "val")
	if !ok {
		return true
	}
	switch strings.ToLower(v) {
	case "0", "false", "off":
		return false
	}
	return true
}

func (p *bodyParser) text() (string, error) {
	var b strings.Builder
	for {
		tok, err := p.d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			if err := p.d.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

// media scans a drawing subtree for the first embedded picture reference and
// its description.
func (p *bodyParser) media() (docmodel.Media, bool, error) {
	var m docmodel.Media
	depth := 1
	for depth > 0 {
		tok, err := p.d.Token()
		if err != nil {
			return m, false, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "blip":
				if id := relAttr(t, "embed"); id != "" && m.EmbedID == "" {
					m.EmbedID = id
				}
			case "imagedata":
				if id := relAttr(t, "id"); id != "" && m.EmbedID == "" {
					m.EmbedID = id
				}
			case "docPr":
				if d, ok := attr(t, "descr"); ok && m.AltText == "" {
					m.AltText = d
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return m, m.EmbedID != "", nil
}

// hyperlink merges the runs inside w:hyperlink into a single display run.
func (p *bodyParser) hyperlink(se xml.StartElement) (*docmodel.Hyperlink, error) {
	link := &docmodel.Hyperlink{RelID: relAttr(se, "id")}
	link.Anchor, _ = attr(se, "anchor")

	items, err := p.inlines(nil)
	if err != nil {
		return nil, err
	}
	var content *docmodel.Run
	for _, item := range items {
		var run *docmodel.Run
		switch v := item.(type) {
		case *docmodel.Run:
			run = v
		case *docmodel.Hyperlink:
			run = v.Content
		}
		if run == nil {
			continue
		}
		if content == nil {
			content = &docmodel.Run{Format: run.Format}
		}
		content.Segments = append(content.Segments, run.Segments...)
	}
	link.Content = content
	return link, nil
}

func (p *bodyParser) table() (*docmodel.Table, error) {
	tbl := &docmodel.Table{}
	for {
		tok, err := p.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "tr" {
				if err := p.d.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			row, err := p.row()
			if err != nil {
				return nil, err
			}
			tbl.Rows = append(tbl.Rows, row)
		case xml.EndElement:
			return tbl, nil
		}
	}
}

func (p *bodyParser) row() (docmodel.Row, error) {
	var row docmodel.Row
	for {
		tok, err := p.d.Token()
		if err != nil {
			return row, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "tc" {
				if err := p.d.Skip(); err != nil {
					return row, err
				}
				continue
			}
			nodes, err := p.blocks()
			if err != nil {
				return row, err
			}
			row.Cells = append(row.Cells, docmodel.Cell{Paragraphs: cellParagraphs(nodes)})
		case xml.EndElement:
			return row, nil
		}
	}
}

// cellParagraphs flattens the blocks of a cell into its paragraphs. Nested
// tables contribute their cell paragraphs in reading order.
func cellParagraphs(nodes []docmodel.Node) []docmodel.Paragraph {
	var paras []docmodel.Paragraph
	for _, n := range nodes {
		switch v := n.(type) {
		case *docmodel.Paragraph:
			paras = append(paras, *v)
		case *docmodel.Container:
			paras = append(paras, cellParagraphs(v.Children)...)
		case *docmodel.Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					paras = append(paras, cell.Paragraphs...)
				}
			}
		}
	}
	return paras
}

func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// relAttr returns an r:-qualified relationship attribute. The bare "r" prefix
// is accepted for parts that omit the namespace declaration.
func relAttr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local && (a.Name.Space == ooxml.NSRelDoc || a.Name.Space == "r") {
			return a.Value
		}
	}
	return ""
}
