package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type DocumentType string

const (
	DocumentTypeUnknown DocumentType = ""
	DocumentTypePDF     DocumentType = "pdf"
	DocumentTypeDOCX    DocumentType = "docx"
)

// DocumentTypeOf derives the document type from the lowercase extension of name.
func DocumentTypeOf(name string) DocumentType {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch DocumentType(ext) {
	case DocumentTypePDF:
		return DocumentTypePDF
	case DocumentTypeDOCX:
		return DocumentTypeDOCX
	default:
		return DocumentTypeUnknown
	}
}

type DocumentExtractor interface {
	// ExtractText returns the plain text of data, dispatching on the
	// extension of fileName. Unsupported extensions yield "" and no error.
	ExtractText(fileName string, data []byte) (string, error)
	ExtractFile(path string) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

func (d *documentExtractor) ExtractText(fileName string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch DocumentTypeOf(fileName) {
	case DocumentTypePDF:
		text, err = extractPDFText(data)
	case DocumentTypeDOCX:
		text, err = extractDocxText(data)
	default:
		return "", nil
	}

	if err != nil {
		return "", &ExtractionError{FileName: fileName, Err: err}
	}

	return strings.ToValidUTF8(text, "�"), nil
}

func (d *documentExtractor) ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{FileName: filepath.Base(path), Err: err}
	}
	return d.ExtractText(filepath.Base(path), data)
}

// extractPDFText concatenates the text of every page with no separator.
// Pages the parser cannot read contribute nothing.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := bodyParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to read docx body: %w", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// bodyParagraphs walks word/document.xml and returns the text of each
// paragraph outside tables, in document order. Tabs and breaks count only
// inside runs; the w:tab entries under w:pPr are tab stop definitions.
func bodyParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		tableDepth int
		paraDepth  int
		runDepth   int
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				paraDepth++
				if paraDepth == 1 {
					current.Reset()
				}
			case "r":
				runDepth++
			case "t":
				inText = paraDepth == 1 && tableDepth == 0
			case "tab":
				if paraDepth == 1 && tableDepth == 0 && runDepth > 0 {
					current.WriteString("\t")
				}
			case "br", "cr":
				if paraDepth == 1 && tableDepth == 0 && runDepth > 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "p":
				if paraDepth == 1 && tableDepth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
				paraDepth--
			case "r":
				runDepth--
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
