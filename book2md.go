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

// Package book2md converts e-books and word-processing documents into
// Markdown chapters plus their extracted images.
package book2md

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/nicholasgasior/book2md/internal/render"
)

const (
	// PrioritySpecific is for format-specific converters (EPUB, DOCX, etc.).
	PrioritySpecific = 0.0
	// PriorityGeneric is for fallback converters (HTML).
	PriorityGeneric = 10.0
)

type registeredConverter struct {
	converter DocumentConverter
	priority  float64
	name      string
}

// Book2MD is the document-to-markdown conversion engine.
type Book2MD struct {
	converters   []registeredConverter
	logger       *zap.Logger
	noImages     bool
	keepDataURIs bool
	mediaPrefix  string
}

// New creates a new Book2MD instance with the given options.
func New(opts ...Option) *Book2MD {
	b := &Book2MD{
		logger:      zap.NewNop(),
		mediaPrefix: render.DefaultMediaPrefix,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.enableBuiltins()
	return b
}

// RegisterConverter adds a custom converter with the given priority.
// Lower priority values are tried first.
func (b *Book2MD) RegisterConverter(name string, c DocumentConverter, priority float64) {
	b.converters = append(b.converters, registeredConverter{
		converter: c,
		priority:  priority,
		name:      name,
	})
	sort.SliceStable(b.converters, func(i, j int) bool {
		return b.converters[i].priority < b.converters[j].priority
	})
}

// ConvertFile converts a local file.
func (b *Book2MD) ConvertFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	info := StreamInfo{
		Extension: ext,
		Filename:  filepath.Base(path),
		LocalPath: path,
	}

	info.MIMEType = detectMIMEType(f, ext)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	return b.ConvertReader(f, info)
}

// ConvertReader converts a stream using the provided StreamInfo. When
// info.MIMEType is empty it is detected from the content.
func (b *Book2MD) ConvertReader(r io.ReadSeeker, info StreamInfo) (*Result, error) {
	if info.MIMEType == "" {
		info.MIMEType = detectMIMEType(r, info.Extension)
	}
	return b.convert(r, info)
}

func (b *Book2MD) convert(r io.ReadSeeker, info StreamInfo) (*Result, error) {
	var failedAttempts []FailedConversionAttempt

	for _, rc := range b.converters {
		if !rc.converter.Accepts(info) {
			continue
		}

		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek: %w", err)
		}

		b.logger.Debug("converting",
			zap.String("converter", rc.name),
			zap.String("mime", info.MIMEType),
			zap.String("extension", info.Extension))

		result, err := rc.converter.Convert(r, info)
		if err != nil {
			b.logger.Warn("converter failed", zap.String("converter", rc.name), zap.Error(err))
			failedAttempts = append(failedAttempts, FailedConversionAttempt{
				Converter: rc.name,
				Err:       err,
			})
			continue
		}

		b.finish(result)
		return result, nil
	}

	if len(failedAttempts) > 0 {
		return nil, &ConversionError{Filename: info.Filename, Attempts: failedAttempts}
	}

	return nil, &UnsupportedFormatError{
		Filename:  info.Filename,
		Extension: info.Extension,
		MIMEType:  info.MIMEType,
	}
}

// finish normalizes every chapter and drops the ones left empty.
func (b *Book2MD) finish(result *Result) {
	chapters := result.Chapters[:0]
	for i, ch := range result.Chapters {
		ch.Markdown = normalizeOutput(ch.Markdown)
		if ch.Markdown == "" {
			b.logger.Debug("skipping empty chapter", zap.Int("index", i), zap.String("title", ch.Title))
			continue
		}
		chapters = append(chapters, ch)
	}
	result.Chapters = chapters

	b.logger.Debug("conversion finished",
		zap.Int("chapters", len(result.Chapters)),
		zap.Int("images", len(result.Images)))
}

func (b *Book2MD) enableBuiltins() {
	b.RegisterConverter("epub", NewEpubConverter(b), PrioritySpecific)
	b.RegisterConverter("docx", NewDocxConverter(b), PrioritySpecific)
	b.RegisterConverter("xlsx", NewXlsxConverter(b), PrioritySpecific)
	b.RegisterConverter("xls", NewXlsConverter(b), PrioritySpecific)
	b.RegisterConverter("csv", NewCsvConverter(b), PrioritySpecific)

	b.RegisterConverter("html", NewHTMLConverter(b), PriorityGeneric)
}

// detectMIMEType detects the MIME type from content and extension.
func detectMIMEType(r io.ReadSeeker, ext string) string {
	defer r.Seek(0, io.SeekStart) //nolint:errcheck

	mtype, err := mimetype.DetectReader(r)
	if err == nil && mtype.String() != "application/octet-stream" && mtype.String() != "application/zip" {
		return mtype.String()
	}

	if m := mimeFromExtension(ext); m != "application/octet-stream" {
		return m
	}
	if err == nil {
		return mtype.String()
	}
	return "application/octet-stream"
}

func mimeFromExtension(ext string) string {
	extMap := map[string]string{
		".docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".xlsx":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		".xls":   "application/vnd.ms-excel",
		".epub":  "application/epub+zip",
		".html":  "text/html",
		".htm":   "text/html",
		".xhtml": "application/xhtml+xml",
		".csv":   "text/csv",
	}
	if m, ok := extMap[ext]; ok {
		return m
	}
	return "application/octet-stream"
}
