// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

const ndaText = "CONFIDENTIALITY AGREEMENT\n\nDEFINITIONS\n\"Confidential Information\" means any information disclosed by one party to the other.\nCLAUSE 1: The Receiving Party shall maintain confidentiality."

func writeTXT(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyze(t *testing.T) {
	path := writeTXT(t, "nda.txt", ndaText)

	result, err := New(types.SummaryConfig{MaxSentences: 10}).Analyze(path)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, path, result.FilePath)
	assert.Equal(t, utf8.RuneCountInString(ndaText), result.TextLength)
	assert.Equal(t, len(strings.Fields(ndaText)), result.WordCount)

	require.NotEmpty(t, result.Clauses)
	assert.Contains(t, result.Clauses[0].Text, "CLAUSE 1")

	require.Len(t, result.Definitions, 1)
	assert.Equal(t, "Confidential Information", result.Definitions[0].Term)

	require.NotEmpty(t, result.Obligations)
	assert.Contains(t, result.Obligations[0], "shall maintain confidentiality")

	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.KeyPoints)
	assert.Equal(t, ndaText, result.FullText)
}

func TestAnalyze_PreviewCapped(t *testing.T) {
	content := "The agreement binds the parties. " + strings.Repeat("More contract text follows here. ", 60)
	path := writeTXT(t, "long.txt", content)

	result, err := New(types.SummaryConfig{}).Analyze(path)
	require.NoError(t, err)
	assert.Equal(t, previewLen, utf8.RuneCountInString(result.FullText))
}

func TestAnalyze_TooShort(t *testing.T) {
	path := writeTXT(t, "short.txt", "too short")

	_, err := New(types.SummaryConfig{}).Analyze(path)
	require.ErrorIs(t, err, ErrContentTooShort)
}

func TestAnalyze_WhitespaceOnlyTooShort(t *testing.T) {
	path := writeTXT(t, "blank.txt", strings.Repeat(" \n\t", 40))

	_, err := New(types.SummaryConfig{}).Analyze(path)
	require.ErrorIs(t, err, ErrContentTooShort)
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, err := New(types.SummaryConfig{}).Analyze(filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, parse.ErrNotFound)
}

func TestAnalyze_UnsupportedFormat(t *testing.T) {
	path := writeTXT(t, "contract.doc", ndaText)

	_, err := New(types.SummaryConfig{}).Analyze(path)
	require.ErrorIs(t, err, parse.ErrUnsupportedFormat)
}

func TestSearch(t *testing.T) {
	path := writeTXT(t, "nda.txt", ndaText)

	report, err := New(types.SummaryConfig{}).Search(path, []string{"confidentiality", "zebra"})
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, path, report.FilePath)
	assert.Equal(t, []string{"confidentiality", "zebra"}, report.Keywords)
	assert.NotContains(t, report.Results, "zebra")
	require.Contains(t, report.Results, "confidentiality")
	assert.GreaterOrEqual(t, len(report.Results["confidentiality"]), 2)
	assert.Equal(t, len(report.Results["confidentiality"]), report.TotalMatches)
}

func TestSearch_NoKeywords(t *testing.T) {
	path := writeTXT(t, "nda.txt", ndaText)

	report, err := New(types.SummaryConfig{}).Search(path, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.Zero(t, report.TotalMatches)
}

func TestReportFile_AnalysisRoundTrip(t *testing.T) {
	src := writeTXT(t, "nda.txt", ndaText)
	result, err := New(types.SummaryConfig{}).Analyze(src)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteAnalysisFile(path, result))

	rf, err := ReadReportFile(path)
	require.NoError(t, err)
	assert.Equal(t, KindAnalysis, rf.Kind)
	require.NotNil(t, rf.Analysis)
	assert.Equal(t, result.Summary, rf.Analysis.Summary)
	assert.Equal(t, src, rf.Summary.Source)
	assert.False(t, rf.Summary.GeneratedAt.IsZero())
}

func TestReportFile_SearchRoundTrip(t *testing.T) {
	src := writeTXT(t, "nda.txt", ndaText)
	report, err := New(types.SummaryConfig{}).Search(src, []string{"party"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, WriteSearchFile(path, report))

	rf, err := ReadReportFile(path)
	require.NoError(t, err)
	assert.Equal(t, KindSearch, rf.Kind)
	require.NotNil(t, rf.Search)
	assert.Equal(t, report.TotalMatches, rf.Search.TotalMatches)
}

func TestReportFile_UnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: draft\n"), 0o644))

	_, err := ReadReportFile(path)
	require.Error(t, err)
}
