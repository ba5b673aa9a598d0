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

// Package output writes converted chapters and images to disk, either as a
// folder (one file per chapter plus a README table of contents) or as a
// single Markdown file.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Separator divides chapters in single-file output.
const Separator = "\n---\n\n"

// Chapter is a converted chapter. An empty Title is derived from Markdown.
type Chapter struct {
	Title    string
	Markdown string
}

// Image is an extracted image; Path is relative to the Markdown output
// (images/<name>).
type Image struct {
	Path string
	Data []byte
}

// Writer writes a converted document to Path.
type Writer struct {
	Path   string
	Single bool
}

// New creates a Writer. In single-file mode path names the Markdown file,
// otherwise the output directory.
func New(path string, single bool) *Writer {
	return &Writer{Path: path, Single: single}
}

// ResolvePath returns output when set, otherwise a path derived from the input
// file stem: "<stem>.md" in single-file mode and "<stem>" otherwise.
func ResolvePath(input, output string, single bool) (string, error) {
	if output != "" {
		return output, nil
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", fmt.Errorf("input file has no name: %q", input)
	}
	if single {
		return stem + ".md", nil
	}
	return stem, nil
}

// ChapterFilename returns the file name of the chapter at the zero-based index.
func ChapterFilename(index int) string {
	return fmt.Sprintf("chapter-%02d.md", index+1)
}

// BaseDir is the directory image paths are resolved against.
func (w *Writer) BaseDir() string {
	if w.Single {
		return filepath.Dir(w.Path)
	}
	return w.Path
}

// Write writes images, then the chapters with header prepended to the README
// or the single file.
func (w *Writer) Write(header string, chapters []Chapter, images []Image) error {
	if err := w.WriteImages(images); err != nil {
		return err
	}
	if w.Single {
		return w.writeSingle(header, chapters)
	}
	return w.writeFolder(header, chapters)
}

// WriteImages writes every image below BaseDir.
func (w *Writer) WriteImages(images []Image) error {
	base := w.BaseDir()
	for _, img := range images {
		path := filepath.Join(base, filepath.FromSlash(img.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			return fmt.Errorf("writing image %s: %w", path, err)
		}
	}
	return nil
}

// Join concatenates chapter Markdown the way single-file output lays it out:
// every chapter followed by a newline, chapters divided by Separator.
func Join(chapters []string) string {
	var b strings.Builder
	for i, md := range chapters {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(md)
		b.WriteString("\n")
	}
	return b.String()
}

func (w *Writer) writeSingle(header string, chapters []Chapter) error {
	parts := make([]string, len(chapters))
	for i, ch := range chapters {
		parts[i] = ch.Markdown
	}
	content := header + Join(parts)

	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(w.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", w.Path, err)
	}
	return nil
}

func (w *Writer) writeFolder(header string, chapters []Chapter) error {
	if err := os.MkdirAll(w.Path, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var readme strings.Builder
	readme.WriteString(header)
	readme.WriteString("## Table of Contents\n\n")

	for i, ch := range chapters {
		name := ChapterFilename(i)
		path := filepath.Join(w.Path, name)
		if err := os.WriteFile(path, []byte(ch.Markdown), 0o644); err != nil {
			return fmt.Errorf("writing chapter %s: %w", path, err)
		}
		fmt.Fprintf(&readme, "%d. [%s](%s)\n", i+1, ChapterTitle(ch.Title, ch.Markdown, i), name)
	}
	readme.WriteString("\n")

	path := filepath.Join(w.Path, "README.md")
	if err := os.WriteFile(path, []byte(readme.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
