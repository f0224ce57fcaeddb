package services

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextExtractor turns a stored upload into plain text. It never fails: files
// that cannot be read produce an empty string.
type TextExtractor interface {
	ExtractText(filePath, ext string) string
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// NormalizeExt lower-cases ext and drops a leading dot.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

func (e *textExtractor) ExtractText(filePath, ext string) string {
	var (
		text string
		err  error
	)

	switch NormalizeExt(ext) {
	case "pdf":
		text, err = extractPDF(filePath)
	case "docx", "doc":
		text, err = extractWord(filePath)
	default:
		return ""
	}

	if err != nil {
		log.Printf("⚠️  Failed to extract text from %s: %v\n", filePath, err)
		return ""
	}

	return text
}

func extractPDF(filePath string) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), nil
}

func extractWord(filePath string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("docx parser panic: %v", r)
		}
	}()

	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	paragraphs, err := documentParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", err
	}

	return strings.Join(paragraphs, "\n"), nil
}

// documentParagraphs returns the text of each w:p that is a direct child of
// w:body. Paragraphs nested in tables or text boxes are skipped. Within a
// paragraph, w:t text is concatenated in order, w:tab becomes "\t" and
// w:br or w:cr becomes "\n".
func documentParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		stack      []string
		paraDepth  = -1
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if paraDepth < 0 && name == "p" && len(stack) > 0 && stack[len(stack)-1] == "body" {
				paraDepth = len(stack)
				current.Reset()
			}
			stack = append(stack, name)
			if paraDepth >= 0 && inRun(stack[paraDepth+1:]) {
				switch name {
				case "tab":
					current.WriteByte('\t')
				case "br", "cr":
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) == paraDepth {
				paragraphs = append(paragraphs, current.String())
				paraDepth = -1
			}
		case xml.CharData:
			if paraDepth < 0 || stack[len(stack)-1] != "t" {
				continue
			}
			if inRun(stack[paraDepth+1:]) {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

// inRun reports whether path, relative to a paragraph, ends inside a run
// element, either directly (r/x) or through a hyperlink (hyperlink/r/x).
func inRun(path []string) bool {
	switch len(path) {
	case 2:
		return path[0] == "r"
	case 3:
		return path[0] == "hyperlink" && path[1] == "r"
	}
	return false
}
