package services

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// writeDocx builds a minimal WordprocessingML package with one run per paragraph.
func writeDocx(t *testing.T, path string, paragraphs ...string) {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, p)
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": docxRels,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

// writePDF builds a two-page PDF. Only the first page has a content stream.
func writePDF(t *testing.T, path, line string) {
	t.Helper()

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", line)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 5 0 R] /Count 2 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 6 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	require.NoError(t, os.WriteFile(path, []byte(buf.String()), 0644))
}

func TestExtractText_PDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	writePDF(t, path, "Experienced Python developer")

	text := NewTextExtractor().ExtractText(path, "pdf")
	assert.Contains(t, text, "Experienced Python developer")
	assert.Equal(t, "Experienced Python developer", strings.TrimSpace(text))
}

func TestExtractText_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	writeDocx(t, path, "Jane Doe", "Experienced Python developer")

	text := NewTextExtractor().ExtractText(path, "docx")
	assert.Equal(t, "Jane Doe\nExperienced Python developer", text)
}

func TestExtractText_ExtensionIsCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	writeDocx(t, path, "Hello")

	extractor := NewTextExtractor()
	assert.Equal(t, "Hello", extractor.ExtractText(path, ".DOCX"))
	assert.Equal(t, "Hello", extractor.ExtractText(path, "Docx"))
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	assert.Empty(t, NewTextExtractor().ExtractText(path, "txt"))
	assert.Empty(t, NewTextExtractor().ExtractText(filepath.Join(t.TempDir(), "missing.rtf"), "rtf"))
}

func TestExtractText_UnreadableFilesYieldEmpty(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "broken")
	require.NoError(t, os.WriteFile(corrupt, []byte("this is not a real document"), 0644))

	extractor := NewTextExtractor()
	cases := []struct {
		name string
		path string
		ext  string
	}{
		{"corrupt pdf", corrupt, "pdf"},
		{"corrupt docx", corrupt, "docx"},
		{"legacy doc", corrupt, "doc"},
		{"missing pdf", filepath.Join(dir, "nope.pdf"), "pdf"},
		{"missing docx", filepath.Join(dir, "nope.docx"), "docx"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, extractor.ExtractText(tc.path, tc.ext))
		})
	}
}

func TestDocumentParagraphs(t *testing.T) {
	xmlBody := `<w:document xmlns:w="w"><w:body>
<w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:pPr><w:jc w:val="left"/></w:pPr><w:r><w:t>Go &amp; SQL</w:t></w:r></w:p>
</w:body></w:document>`

	paragraphs, err := documentParagraphs(xmlBody)
	require.NoError(t, err)
	assert.Equal(t, []string{"Senior Engineer", "", "Go & SQL"}, paragraphs)

	_, err = documentParagraphs("<w:p><w:t>unterminated")
	assert.Error(t, err)
}

func TestDocumentParagraphs_BodyParagraphsOnly(t *testing.T) {
	xmlBody := `<w:document xmlns:w="w"><w:body>
<w:p><w:r><w:t>Skills</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>inside table</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:r><w:t>Done</w:t></w:r></w:p>
</w:body></w:document>`

	paragraphs, err := documentParagraphs(xmlBody)
	require.NoError(t, err)
	assert.Equal(t, []string{"Skills", "Done"}, paragraphs)
}

func TestDocumentParagraphs_TabsBreaksAndHyperlinks(t *testing.T) {
	xmlBody := `<w:document xmlns:w="w"><w:body>
<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>Name</w:t><w:tab/><w:t>Jane</w:t></w:r></w:p>
<w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">See </w:t></w:r><w:hyperlink><w:r><w:t>portfolio</w:t></w:r></w:hyperlink></w:p>
</w:body></w:document>`

	paragraphs, err := documentParagraphs(xmlBody)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name\tJane", "line one\nline two", "See portfolio"}, paragraphs)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "docx", NormalizeExt("docx"))
	assert.Equal(t, "", NormalizeExt(""))
}
