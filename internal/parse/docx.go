// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// parseDOCX opens the file as a ZIP archive and extracts the text of every
// non-blank paragraph from word/document.xml, in document order.
func parseDOCX(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", &DecodeError{Format: "docx", Err: err}
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", &DecodeError{Format: "docx", Err: err}
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", &DecodeError{Format: "docx", Err: err}
		}
		return paragraphText(data)
	}

	return "", &DecodeError{Format: "docx", Err: errors.New("word/document.xml not found")}
}

// documentXML mirrors the subset of word/document.xml the parser reads.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// paragraphText joins the text of non-blank paragraphs with newlines.
// Paragraphs whose trimmed text is empty are skipped.
func paragraphText(data []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", &DecodeError{Format: "docx", Err: err}
	}

	var paras []string
	for _, p := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, r := range p.Runs {
			for _, t := range r.Text {
				b.WriteString(t.Content)
			}
		}
		if strings.TrimSpace(b.String()) == "" {
			continue
		}
		paras = append(paras, b.String())
	}
	return strings.Join(paras, "\n"), nil
}
