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
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/nicholasgasior/book2md/internal/docmodel"
	"github.com/nicholasgasior/book2md/internal/ooxml"
	"github.com/nicholasgasior/book2md/internal/render"
)

// EpubConverter handles EPUB files. Each spine document becomes a chapter.
type EpubConverter struct {
	book2md *Book2MD
}

// NewEpubConverter creates a new EpubConverter.
func NewEpubConverter(b *Book2MD) *EpubConverter {
	return &EpubConverter{book2md: b}
}

func (c *EpubConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".epub" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/epub") ||
		strings.HasPrefix(mime, "application/x-epub+zip")
}

type opfPackage struct {
	Metadata struct {
		Titles       []string `xml:"title"`
		Creators     []string `xml:"creator"`
		Publishers   []string `xml:"publisher"`
		Languages    []string `xml:"language"`
		Descriptions []string `xml:"description"`
	} `xml:"metadata"`
	Manifest []opfItem    `xml:"manifest>item"`
	Spine    []opfItemRef `xml:"spine>itemref"`
}

type opfItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

type opfItemRef struct {
	IDRef string `xml:"idref,attr"`
}

type containerXML struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

func (c *EpubConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read EPUB: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open EPUB ZIP: %w", err)
	}

	opfPath, err := findOPFPath(zr)
	if err != nil {
		return nil, fmt.Errorf("find OPF: %w", err)
	}

	pkg, err := parseOPF(zr, opfPath)
	if err != nil {
		return nil, fmt.Errorf("parse OPF: %w", err)
	}

	logger := c.logger()
	opfDir := path.Dir(opfPath)

	manifest := make(map[string]opfItem, len(pkg.Manifest))
	var assets []asset
	for _, item := range pkg.Manifest {
		manifest[item.ID] = item
		if !strings.HasPrefix(item.MediaType, "image/") {
			continue
		}
		href := resolveHref(opfDir, item.Href)
		raw, err := ooxml.ReadPart(zr, href)
		if err != nil {
			logger.Warn("skipping image", zap.String("href", href), zap.Error(err))
			continue
		}
		assets = append(assets, asset{href: href, data: raw})
	}

	images, imageMap := c.book2md.extractImages(assets)
	addEscapedRefs(imageMap, images)
	htmlConv := NewHTMLConverter(c.book2md)

	var chapters []Chapter
	for _, ref := range pkg.Spine {
		item, ok := manifest[ref.IDRef]
		if !ok || !isHTMLItem(item) {
			continue
		}

		chapterPath := resolveHref(opfDir, item.Href)
		raw, err := ooxml.ReadPart(zr, chapterPath)
		if err != nil {
			logger.Warn("skipping chapter", zap.String("path", chapterPath), zap.Error(err))
			continue
		}

		doc := resolveImageRefs(decodeText(raw, ""), chapterPath)
		md, _, err := htmlConv.ConvertString(doc)
		if err != nil {
			logger.Warn("skipping chapter", zap.String("path", chapterPath), zap.Error(err))
			continue
		}

		md = render.Normalize(render.RewriteImagePaths(md, imageMap))
		if md == "" {
			continue
		}
		chapters = append(chapters, Chapter{Markdown: md})
	}

	return &Result{
		Metadata: Metadata{
			Title:       first(pkg.Metadata.Titles),
			Authors:     nonEmpty(pkg.Metadata.Creators),
			Publisher:   first(pkg.Metadata.Publishers),
			Language:    first(pkg.Metadata.Languages),
			Description: first(pkg.Metadata.Descriptions),
		},
		Chapters: chapters,
		Images:   images,
	}, nil
}

func (c *EpubConverter) logger() *zap.Logger {
	if c.book2md == nil {
		return zap.NewNop()
	}
	return c.book2md.logger
}

func findOPFPath(zr *zip.Reader) (string, error) {
	data, err := ooxml.ReadPart(zr, "META-INF/container.xml")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPackage, err)
	}

	var container containerXML
	if err := xml.Unmarshal(data, &container); err != nil {
		return "", fmt.Errorf("decode container.xml: %w", err)
	}
	for _, rf := range container.Rootfiles {
		if rf.FullPath != "" {
			return rf.FullPath, nil
		}
	}
	return "", fmt.Errorf("%w: rootfile not found in container.xml", ErrInvalidPackage)
}

func parseOPF(zr *zip.Reader, opfPath string) (*opfPackage, error) {
	data, err := ooxml.ReadPart(zr, opfPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPackage, err)
	}
	var pkg opfPackage
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func isHTMLItem(item opfItem) bool {
	ext := strings.ToLower(path.Ext(item.Href))
	return ext == ".html" || ext == ".htm" || ext == ".xhtml" ||
		strings.Contains(item.MediaType, "html")
}

// resolveHref turns an href relative to dir into a package path. Fragments
// and percent-escapes are removed.
func resolveHref(dir, href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	if unescaped, err := url.PathUnescape(href); err == nil {
		href = unescaped
	}
	if strings.HasPrefix(href, "/") {
		return strings.TrimPrefix(path.Clean(href), "/")
	}
	return strings.TrimPrefix(path.Join(dir, href), "./")
}

// resolveImageRefs rewrites relative image sources of a chapter document to
// percent-escaped package paths, the form the HTML converter emits and
// addEscapedRefs registers in the image map.
func resolveImageRefs(doc, chapterPath string) string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return doc
	}

	dir := path.Dir(chapterPath)
	changed := false
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "img" || n.Data == "image") {
			for i, a := range n.Attr {
				if (a.Key == "src" || a.Key == "href") && isRelativeRef(a.Val) {
					n.Attr[i].Val = escapePath(resolveHref(dir, a.Val))
					changed = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if !changed {
		return doc
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return doc
	}
	return buf.String()
}

// escapePath percent-escapes a slash-separated path for use as a URL path.
func escapePath(p string) string {
	return (&url.URL{Path: p}).EscapedPath()
}

// addEscapedRefs maps the escaped href of every image whose name needs
// escaping to the escaped output path, so links written as
// "Images/my%20fig.png" are rewritten as well.
func addEscapedRefs(m *docmodel.ImageMap, images []Image) {
	for _, img := range images {
		if esc := escapePath(img.Href); esc != img.Href {
			m.Add(esc, escapePath(img.Path))
		}
	}
}

func isRelativeRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	u, err := url.Parse(ref)
	return err == nil && u.Scheme == ""
}

func first(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
