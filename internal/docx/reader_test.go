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
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicholasgasior/book2md/internal/docmodel"
	"github.com/nicholasgasior/book2md/internal/render"
)

const (
	docHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
 xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"
 xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
 xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
 xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">
<w:body>`
	docFooter = `</w:body></w:document>`
)

// buildDOCX writes parts into an in-memory zip. document.xml receives the body
// markup wrapped in the standard envelope.
func buildDOCX(t *testing.T, body string, parts map[string]string) *zip.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name, content string) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	write("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)
	write("word/document.xml", docHeader+body+docFooter)
	for name, content := range parts {
		write(name, content)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestReadMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	_, err = Read(zr)
	assert.Error(t, err)
}

func TestReadParagraphsAndFormatting(t *testing.T) {
	zr := buildDOCX(t, `
<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Intro</w:t></w:r></w:p>
<w:p>
  <w:r><w:rPr><w:b/><w:i w:val="true"/></w:rPr><w:t>both</w:t></w:r>
  <w:r><w:rPr><w:b w:val="0"/><w:dstrike/></w:rPr><w:t xml:space="preserve"> gone </w:t></w:r>
  <w:r><w:t>a</w:t><w:br/><w:t>b</w:t><w:tab/><w:t>c</w:t></w:r>
</w:p>
<w:sectPr/>`, nil)

	doc, err := Read(zr)
	require.NoError(t, err)
	require.Len(t, doc.Body.Children, 3)

	heading := doc.Body.Children[0].(*docmodel.Paragraph)
	assert.Equal(t, "Heading1", heading.StyleID)

	para := doc.Body.Children[1].(*docmodel.Paragraph)
	require.Len(t, para.Inlines, 3)
	assert.Equal(t, docmodel.Bold|docmodel.Italic, para.Inlines[0].(*docmodel.Run).Format)
	assert.Equal(t, docmodel.Strike, para.Inlines[1].(*docmodel.Run).Format)
	assert.Equal(t, []docmodel.Segment{
		docmodel.Text("a"), docmodel.LineBreak{}, docmodel.Text("b"), docmodel.Tab{}, docmodel.Text("c"),
	}, para.Inlines[2].(*docmodel.Run).Segments)

	assert.Equal(t, &docmodel.Unknown{Name: "sectPr"}, doc.Body.Children[2])
}

func TestReadNumbering(t *testing.T) {
	zr := buildDOCX(t, `
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="5"/></w:numPr></w:pPr><w:r><w:t>one</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:numId w:val="5"/></w:numPr></w:pPr><w:r><w:t>two</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:ilvl w:val="1"/><w:numId w:val="0"/></w:numPr></w:pPr><w:r><w:t>plain</w:t></w:r></w:p>`,
		map[string]string{
			"word/numbering.xml": `<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:abstractNum w:abstractNumId="3">
    <w:lvl w:ilvl="0"><w:numFmt w:val="decimal"/></w:lvl>
    <w:lvl w:ilvl="1"><w:numFmt w:val="bullet"/></w:lvl>
    <w:lvl w:ilvl="2"><w:numFmt w:val="ordinalText"/></w:lvl>
  </w:abstractNum>
  <w:num w:numId="5"><w:abstractNumId w:val="3"/></w:num>
</w:numbering>`,
		})

	doc, err := Read(zr)
	require.NoError(t, err)

	refs := make([]*docmodel.NumberingRef, 0, 3)
	for _, n := range doc.Body.Children {
		refs = append(refs, n.(*docmodel.Paragraph).Numbering)
	}
	assert.Equal(t, &docmodel.NumberingRef{ListID: 5, Level: 0}, refs[0])
	assert.Equal(t, &docmodel.NumberingRef{ListID: 5, Level: 0}, refs[1])
	assert.Nil(t, refs[2])

	kind, ok := doc.Numbering.Format(5, 0)
	assert.True(t, ok)
	assert.Equal(t, docmodel.FormatDecimal, kind)
	kind, ok = doc.Numbering.Format(5, 1)
	assert.True(t, ok)
	assert.Equal(t, docmodel.FormatBullet, kind)
	_, ok = doc.Numbering.Format(5, 2)
	assert.False(t, ok)

	md, err := render.New(doc.Relationships, doc.Numbering).Convert(doc.Body)
	require.NoError(t, err)
	assert.Equal(t, "1. one\n2. two\nplain\n", md)
}

func TestReadLocalizedHeadingStyles(t *testing.T) {
	zr := buildDOCX(t, `
<w:p><w:pPr><w:pStyle w:val="berschrift2"/></w:pPr><w:r><w:t>Kapitel</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Titel"/></w:pPr><w:r><w:t>Buch</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Zitat"/></w:pPr><w:r><w:t>Zitat</w:t></w:r></w:p>`,
		map[string]string{
			"word/styles.xml": `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:styleId="berschrift2"><w:name w:val="heading 2"/></w:style>
  <w:style w:type="paragraph" w:styleId="Titel"><w:name w:val="Title"/></w:style>
  <w:style w:type="paragraph" w:styleId="Zitat"><w:name w:val="Quote"/></w:style>
</w:styles>`,
		})

	doc, err := Read(zr)
	require.NoError(t, err)

	var ids []string
	for _, n := range doc.Body.Children {
		ids = append(ids, n.(*docmodel.Paragraph).StyleID)
	}
	assert.Equal(t, []string{"Heading2", "Title", "Zitat"}, ids)
}

func TestReadHyperlinksAndImages(t *testing.T) {
	zr := buildDOCX(t, `
<w:p>
  <w:hyperlink r:id="rId7"><w:r><w:rPr><w:b/></w:rPr><w:t>Go</w:t></w:r><w:r><w:t>lang</w:t></w:r></w:hyperlink>
  <w:hyperlink w:anchor="_Toc1"><w:r><w:t>top</w:t></w:r></w:hyperlink>
</w:p>
<w:p><w:r><w:drawing><wp:inline>
  <wp:docPr id="1" name="Picture 1" descr="A chart"/>
  <a:graphic><a:graphicData><pic:pic><pic:blipFill><a:blip r:embed="rId9"/></pic:blipFill></pic:pic></a:graphicData></a:graphic>
</wp:inline></w:drawing></w:r></w:p>`,
		map[string]string{
			"word/_rels/document.xml.rels": `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId7" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://go.dev" TargetMode="External"/>
  <Relationship Id="rId9" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
</Relationships>`,
			"word/media/image1.png": "\x89PNG\r\n\x1a\nfake",
		})

	doc, err := Read(zr)
	require.NoError(t, err)

	para := doc.Body.Children[0].(*docmodel.Paragraph)
	require.Len(t, para.Inlines, 2)
	link := para.Inlines[0].(*docmodel.Hyperlink)
	assert.Equal(t, "rId7", link.RelID)
	assert.Equal(t, []docmodel.Segment{docmodel.Text("Go"), docmodel.Text("lang")}, link.Content.Segments)
	assert.Equal(t, "_Toc1", para.Inlines[1].(*docmodel.Hyperlink).Anchor)

	img := doc.Body.Children[1].(*docmodel.Paragraph).Inlines[0].(*docmodel.Run)
	assert.Equal(t, []docmodel.Segment{docmodel.Media{EmbedID: "rId9", AltText: "A chart"}}, img.Segments)

	assert.Equal(t, "https://go.dev", doc.Relationships["rId7"])
	require.Len(t, doc.Media, 1)
	assert.Equal(t, "word/media/image1.png", doc.Media[0].Name)

	images := docmodel.NewImageMap()
	images.Add("word/media/image1.png", "images/image1.png")
	md, err := render.New(doc.Relationships, doc.Numbering, render.WithImages(images)).Convert(doc.Body)
	require.NoError(t, err)
	assert.Equal(t, "[Golang](https://go.dev)[top](#_Toc1)\n\n![A chart](images/image1.png)\n", md)
}

func TestReadTablesAndContentControls(t *testing.T) {
	zr := buildDOCX(t, `
<w:sdt><w:sdtPr><w:alias w:val="box"/></w:sdtPr><w:sdtContent>
  <w:p><w:r><w:t>inside</w:t></w:r></w:p>
</w:sdtContent></w:sdt>
<w:tbl>
  <w:tblPr/><w:tblGrid/>
  <w:tr>
    <w:tc><w:tcPr/><w:p><w:r><w:t>A</w:t></w:r></w:p><w:p><w:r><w:t>B</w:t></w:r></w:p></w:tc>
    <w:tc><w:tbl><w:tr><w:tc><w:p><w:r><w:t>nested</w:t></w:r></w:p></w:tc></w:tr></w:tbl></w:tc>
  </w:tr>
</w:tbl>`, nil)

	doc, err := Read(zr)
	require.NoError(t, err)
	require.Len(t, doc.Body.Children, 2)

	sdt := doc.Body.Children[0].(*docmodel.Container)
	require.Len(t, sdt.Children, 1)

	tbl := doc.Body.Children[1].(*docmodel.Table)
	require.Len(t, tbl.Rows, 1)
	require.Len(t, tbl.Rows[0].Cells, 2)
	assert.Len(t, tbl.Rows[0].Cells[0].Paragraphs, 2)
	assert.Equal(t, []docmodel.Paragraph{docmodel.TextParagraph("nested")}, tbl.Rows[0].Cells[1].Paragraphs)

	md, err := render.New(nil, nil).Convert(doc.Body)
	require.NoError(t, err)
	assert.Equal(t, "inside\n\n| A<br>B | nested |\n| --- | --- |\n", md)
}

func TestReadProperties(t *testing.T) {
	zr := buildDOCX(t, `<w:p/>`, map[string]string{
		"docProps/core.xml": `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
 xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title> Field Notes </dc:title><dc:creator>R. Author</dc:creator><dc:language>en-GB</dc:language>
</cp:coreProperties>`,
		"docProps/app.xml": `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Company>Acme</Company></Properties>`,
	})

	doc, err := Read(zr)
	require.NoError(t, err)
	assert.Equal(t, "Field Notes", doc.Properties.Title)
	assert.Equal(t, "R. Author", doc.Properties.Creator)
	assert.Equal(t, "en-GB", doc.Properties.Language)
	assert.Equal(t, "Acme", doc.Properties.Company)
}
