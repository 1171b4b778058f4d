// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze sequences the document pipeline: decode the file, validate
// its content, run the extractors and summarizer, and assemble the result
// record. The analyzer holds no mutable state, so a single instance is safe
// to share across concurrent calls.
package analyze

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/extract"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/search"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/summarize"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

const (
	// minContentLen is the minimum trimmed character count a document must
	// decode to before analysis proceeds.
	minContentLen = 50

	// previewLen caps the full-text preview carried in the result.
	previewLen = 1000
)

// ErrContentTooShort is returned when the decoded text is too small to
// analyze meaningfully.
var ErrContentTooShort = errors.New("document appears to be empty or too short")

// Analyzer runs the analysis and search pipelines over document files.
type Analyzer struct {
	summary types.SummaryConfig
}

// New returns an Analyzer using the given summary configuration.
func New(cfg types.SummaryConfig) *Analyzer {
	if cfg.MaxSentences <= 0 {
		cfg.MaxSentences = summarize.DefaultMaxSentences
	}
	return &Analyzer{summary: cfg}
}

// SupportedFormats lists the file extensions the analyzer accepts.
func SupportedFormats() []string {
	return parse.SupportedFormats
}

// Analyze decodes the file at path, validates its content, and runs the full
// extraction and summarization pipeline. Errors from the decoding layer pass
// through unchanged so callers can inspect them with errors.Is and errors.As.
func (a *Analyzer) Analyze(path string) (*types.AnalysisResult, error) {
	text, err := parse.Parse(path)
	if err != nil {
		return nil, err
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minContentLen {
		return nil, fmt.Errorf("%s: %w", path, ErrContentTooShort)
	}

	doc := types.Document{Path: path, Text: text}
	clauses := extract.Clauses(text)
	definitions := extract.Definitions(text)
	obligations := extract.Obligations(text)

	return &types.AnalysisResult{
		Success:     true,
		FilePath:    path,
		TextLength:  doc.Length(),
		WordCount:   doc.Words(),
		Clauses:     clauses,
		Definitions: definitions,
		Obligations: obligations,
		Summary:     summarize.Summarize(text, a.summary.MaxSentences),
		KeyPoints:   summarize.KeyPoints(text, clauses, definitions, obligations),
		FullText:    preview(text, previewLen),
	}, nil
}

// Search decodes the file at path and scans it for the given keywords. Zero
// matches yields a successful report with an empty mapping.
func (a *Analyzer) Search(path string, keywords []string) (*types.SearchReport, error) {
	text, err := parse.Parse(path)
	if err != nil {
		return nil, err
	}

	results := search.Keywords(text, keywords)
	return &types.SearchReport{
		Success:      true,
		FilePath:     path,
		Keywords:     keywords,
		Results:      results,
		TotalMatches: search.Total(results),
	}, nil
}

// preview returns the first max characters of text.
func preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
