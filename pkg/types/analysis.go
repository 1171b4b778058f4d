// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the legal-analyzer pipeline.
package types

import (
	"strings"
	"unicode/utf8"
)

// Document is the decoded plain-text content of one input file. Documents are
// built per analysis or search call and never persisted.
type Document struct {
	// Path is the source file the text was decoded from.
	Path string `json:"path" yaml:"path"`

	// Text is the full decoded plain text.
	Text string `json:"text" yaml:"text"`
}

// Words returns the number of whitespace-separated words in the text.
func (d Document) Words() int {
	return len(strings.Fields(d.Text))
}

// Length returns the text length in characters.
func (d Document) Length() int {
	return utf8.RuneCountInString(d.Text)
}

// Clause is a numbered or labeled structural unit of a legal document
// (section, article, paragraph). Read-only after creation; clause order is
// order of appearance in the source text.
type Clause struct {
	// Number is the identifier captured from the clause marker, or a 1-based
	// sequential fallback when the marker carried none.
	Number string `json:"number" yaml:"number"`

	// Text is a bounded preview of the clause and the lines following it.
	Text string `json:"text" yaml:"text"`
}

// Definition is a term-and-meaning pair introduced via defining language
// ("means", "refers to", and similar).
type Definition struct {
	// Term is the quoted phrase being defined.
	Term string `json:"term" yaml:"term"`

	// Definition is a contextual snippet around the defining language.
	Definition string `json:"definition" yaml:"definition"`
}

// AnalysisResult aggregates one full document analysis. It is returned to the
// caller and not stored anywhere beyond the request.
type AnalysisResult struct {
	Success    bool   `json:"success" yaml:"success"`
	FilePath   string `json:"file_path" yaml:"file_path"`
	TextLength int    `json:"text_length" yaml:"text_length"`
	WordCount  int    `json:"word_count" yaml:"word_count"`

	Clauses     []Clause     `json:"clauses" yaml:"clauses"`
	Definitions []Definition `json:"definitions" yaml:"definitions"`
	Obligations []string     `json:"obligations" yaml:"obligations"`

	// Summary is the extractive summary; KeyPoints is a short bullet list
	// derived from the other outputs.
	Summary   string   `json:"summary" yaml:"summary"`
	KeyPoints []string `json:"key_points" yaml:"key_points"`

	// FullText is a preview of the first 1000 characters of the decoded text.
	FullText string `json:"full_text" yaml:"full_text"`
}
