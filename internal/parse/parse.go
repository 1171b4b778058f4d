// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse decodes PDF, DOCX, and plain-text files into plain text.
// Decoding is a pure bytes-to-text transform: no structural interpretation,
// no side effects on the input file.
package parse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedFormats lists the file extensions the parser accepts, in the order
// they are reported to callers. The extension is the sole format-selection
// mechanism; there is no content sniffing.
var SupportedFormats = []string{".pdf", ".docx", ".txt"}

var (
	// ErrNotFound is returned when the path does not resolve to an existing file.
	ErrNotFound = errors.New("file not found")

	// ErrUnsupportedFormat is returned when the extension is outside the
	// supported set.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// DecodeError wraps a failure from a format-specific decoding path. The
// underlying cause is preserved for diagnostics; library error types never
// cross the package boundary on their own.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Supported reports whether ext (with leading dot, any case) is a supported
// format.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range SupportedFormats {
		if ext == s {
			return true
		}
	}
	return false
}

// Parse decodes the file at path into plain text. File existence and format
// are both checked before any decoding attempt; a missing file wins over an
// unsupported extension.
func Parse(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return "", fmt.Errorf("%q: %w (supported formats: %s)",
			ext, ErrUnsupportedFormat, strings.Join(SupportedFormats, ", "))
	}

	switch ext {
	case ".pdf":
		return parsePDF(path)
	case ".docx":
		return parseDOCX(path)
	default:
		return parseTXT(path)
	}
}

// parseTXT reads the file as UTF-8 text verbatim. An empty file yields an
// empty string, which is a valid result.
func parseTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &DecodeError{Format: "txt", Err: err}
	}
	return string(data), nil
}
