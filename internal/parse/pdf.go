// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// parsePDF extracts the plain text of every page and joins pages with
// newlines, in page order. The pdf library panics on some malformed inputs,
// so decoding runs behind a recover that converts the panic into a
// DecodeError.
func parsePDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DecodeError{Format: "pdf", Err: fmt.Errorf("%v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &DecodeError{Format: "pdf", Err: err}
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", &DecodeError{Format: "pdf", Err: err}
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}
