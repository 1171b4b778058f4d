// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyze"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
)

// errorJSON builds the error envelope shared by all failure responses.
func errorJSON(code, message string) gin.H {
	return gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"supported_formats": analyze.SupportedFormats(),
	})
}

// handleUpload accepts a multipart document upload, analyzes it, and returns
// the full analysis record. The uploaded file is removed before responding.
func (s *Server) handleUpload(c *gin.Context) {
	path, ok := s.saveUpload(c)
	if !ok {
		return
	}
	defer os.Remove(path)

	result, err := s.analyzer.Analyze(path)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleSearch accepts a multipart document upload plus a comma-separated
// keywords field and returns the match report.
func (s *Server) handleSearch(c *gin.Context) {
	keywords := splitKeywords(c.PostForm("keywords"))
	if len(keywords) == 0 {
		c.JSON(http.StatusBadRequest, errorJSON("MISSING_KEYWORDS", "At least one non-empty keyword is required"))
		return
	}

	path, ok := s.saveUpload(c)
	if !ok {
		return
	}
	defer os.Remove(path)

	report, err := s.analyzer.Search(path, keywords)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// saveUpload validates the multipart file and writes it to the upload
// directory under a random name, preserving the original extension so format
// dispatch still works. On failure it writes the error response and returns
// ok=false.
func (s *Server) saveUpload(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorJSON("MISSING_FILE", "File is required"))
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !parse.Supported(ext) {
		c.JSON(http.StatusBadRequest, errorJSON("UNSUPPORTED_FORMAT",
			fmt.Sprintf("Unsupported file format %q. Supported formats: %s",
				ext, strings.Join(parse.SupportedFormats, ", "))))
		return "", false
	}

	if fileHeader.Size > s.cfg.MaxUploadBytes() {
		c.JSON(http.StatusBadRequest, errorJSON("FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", s.cfg.MaxUploadBytes())))
		return "", false
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, errorJSON("UPLOAD_FAILED", "Could not prepare upload directory"))
		return "", false
	}

	dst := filepath.Join(s.cfg.UploadDir, uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		c.JSON(http.StatusInternalServerError, errorJSON("UPLOAD_FAILED", "Could not save uploaded file"))
		return "", false
	}

	return dst, true
}

// writeError maps pipeline errors to HTTP status codes and the shared error
// envelope.
func writeError(c *gin.Context, err error) {
	var decodeErr *parse.DecodeError

	switch {
	case errors.Is(err, parse.ErrNotFound):
		c.JSON(http.StatusNotFound, errorJSON("NOT_FOUND", err.Error()))
	case errors.Is(err, parse.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, errorJSON("UNSUPPORTED_FORMAT", err.Error()))
	case errors.Is(err, analyze.ErrContentTooShort):
		c.JSON(http.StatusBadRequest, errorJSON("CONTENT_TOO_SHORT", err.Error()))
	case errors.As(err, &decodeErr):
		c.JSON(http.StatusInternalServerError, errorJSON("DECODE_FAILED", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorJSON("INTERNAL_ERROR",
			fmt.Sprintf("Error analyzing document: %s", err)))
	}
}

// splitKeywords parses a comma-separated keyword list, dropping blanks.
func splitKeywords(raw string) []string {
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
