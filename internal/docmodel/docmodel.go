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

// Package docmodel defines the parsed word-processing document tree consumed by
// the Markdown renderer, together with the lookup tables the renderer resolves
// references against.
package docmodel

// Node is a block-level element of a document body.
//
// The set of variants is closed: Paragraph, Table, Container and Unknown.
type Node interface {
	isNode()
}

// Paragraph is a block of inline content with optional style and numbering.
type Paragraph struct {
	// StyleID is the paragraph style identifier, empty when unstyled.
	StyleID   string
	Numbering *NumberingRef
	Inlines   []Inline
}

// NumberingRef points a paragraph at a list definition and indent level.
type NumberingRef struct {
	ListID int
	Level  int
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []Row
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell
}

// Cell holds one or more paragraphs.
type Cell struct {
	Paragraphs []Paragraph
}

// Container wraps child nodes without contributing markup of its own
// (structured document tags, content controls).
type Container struct {
	Children []Node
}

// Unknown records a body element the reader does not model.
type Unknown struct {
	Name string
}

func (*Paragraph) isNode() {}
func (*Table) isNode()     {}
func (*Container) isNode() {}
func (*Unknown) isNode()   {}

// Inline is a piece of paragraph content: a Run or a Hyperlink.
type Inline interface {
	isInline()
}

// Format is the character formatting flag set of a run.
type Format uint8

const (
	Bold Format = 1 << iota
	Italic
	Strike
)

// Has reports whether every flag in f2 is set in f.
func (f Format) Has(f2 Format) bool {
	return f&f2 == f2
}

// Run is a span of segments sharing one formatting flag set.
type Run struct {
	Segments []Segment
	Format   Format
}

// Hyperlink wraps display text with either an internal anchor or an external
// relationship id.
type Hyperlink struct {
	Content *Run
	Anchor  string
	RelID   string
}

func (*Run) isInline()       {}
func (*Hyperlink) isInline() {}

// Segment is one element of a run.
type Segment interface {
	isSegment()
}

// Text is literal run text.
type Text string

// LineBreak is a manual line break inside a run.
type LineBreak struct{}

// Tab is a tab character.
type Tab struct{}

// Media is an embedded image referenced by relationship id.
type Media struct {
	EmbedID string
	AltText string
}

func (Text) isSegment()      {}
func (LineBreak) isSegment() {}
func (Tab) isSegment()       {}
func (Media) isSegment()     {}

// NewText is a convenience constructor for a single-text run.
func NewText(s string, f Format) *Run {
	return &Run{Segments: []Segment{Text(s)}, Format: f}
}

// TextParagraph builds an unstyled paragraph holding one plain run.
func TextParagraph(s string) Paragraph {
	return Paragraph{Inlines: []Inline{NewText(s, 0)}}
}
