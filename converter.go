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
	"io"

	"github.com/nicholasgasior/book2md/internal/output"
)

// StreamInfo holds metadata about the input being converted.
type StreamInfo struct {
	MIMEType  string
	Extension string
	Charset   string
	Filename  string
	LocalPath string
}

// Metadata describes the book or document as a whole.
type Metadata struct {
	Title       string
	Authors     []string
	Publisher   string
	Language    string
	Description string
}

// Chapter is one Markdown output unit. Title may be empty, in which case the
// writer derives one from the content.
type Chapter struct {
	Title    string
	Markdown string
}

// Image is an extracted asset. Href is the reference used inside the source
// package, Path the output-relative location (images/<name>).
type Image struct {
	Href string
	Path string
	Data []byte
}

// Result holds the output of a conversion.
type Result struct {
	Metadata Metadata
	Chapters []Chapter
	Images   []Image
}

// Markdown joins the chapters the way single-file output does, without the
// metadata header.
func (r *Result) Markdown() string {
	if r == nil {
		return ""
	}
	parts := make([]string, len(r.Chapters))
	for i, ch := range r.Chapters {
		parts[i] = ch.Markdown
	}
	return output.Join(parts)
}

// DocumentConverter is the interface all format converters implement.
type DocumentConverter interface {
	// Accepts returns true if this converter can handle the given input.
	// It MUST NOT change the read position of reader.
	Accepts(info StreamInfo) bool

	// Convert performs the actual document-to-markdown conversion.
	Convert(reader io.ReadSeeker, info StreamInfo) (*Result, error)
}
