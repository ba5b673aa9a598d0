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
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// HTMLConverter handles standalone HTML files and EPUB chapter documents.
type HTMLConverter struct {
	book2md *Book2MD
}

// NewHTMLConverter creates a new HTMLConverter.
func NewHTMLConverter(b *Book2MD) *HTMLConverter {
	return &HTMLConverter{book2md: b}
}

func (c *HTMLConverter) Accepts(info StreamInfo) bool {
	switch info.Extension {
	case ".html", ".htm", ".xhtml":
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "text/html") || strings.HasPrefix(mime, "application/xhtml")
}

func (c *HTMLConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	md, title, err := c.ConvertString(decodeText(data, info.Charset))
	if err != nil {
		return nil, err
	}

	return &Result{
		Metadata: Metadata{Title: title},
		Chapters: []Chapter{{Title: title, Markdown: md}},
	}, nil
}

// ConvertString converts an HTML document to Markdown and returns it with the
// document <title>.
func (c *HTMLConverter) ConvertString(htmlStr string) (markdown, title string, err error) {
	title = extractHTMLTitle(htmlStr)

	htmlStr = removeScriptAndStyle(htmlStr)

	md, err := convertHTMLToMarkdown(htmlStr)
	if err != nil {
		return "", "", fmt.Errorf("convert HTML to markdown: %w", err)
	}

	if c.book2md == nil || !c.book2md.keepDataURIs {
		md = truncateDataURIs(md)
	}

	return md, title, nil
}

func convertHTMLToMarkdown(htmlStr string) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
			),
			table.NewTablePlugin(),
		),
	)

	return conv.ConvertString(htmlStr)
}

var (
	reScript  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	reStyle   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	reDataURI = regexp.MustCompile(`(data:[a-zA-Z0-9/+.-]+;base64,)[A-Za-z0-9+/=]{64,}`)
)

func removeScriptAndStyle(htmlStr string) string {
	htmlStr = reScript.ReplaceAllString(htmlStr, "")
	return reStyle.ReplaceAllString(htmlStr, "")
}

// truncateDataURIs shortens large base64 data URIs to data:mime/type;base64...
func truncateDataURIs(md string) string {
	return reDataURI.ReplaceAllString(md, "${1}...")
}

func extractHTMLTitle(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}
	if n := findElement(doc, "title"); n != nil {
		return strings.TrimSpace(textContent(n))
	}
	return ""
}

// findElement returns the first element named tag in document order.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
