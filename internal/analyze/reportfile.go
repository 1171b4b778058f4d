// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

// Report kinds stored in report files.
const (
	KindAnalysis = "analysis"
	KindSearch   = "search"
)

// ReportFile is the on-disk representation of an analysis or search run. A
// saved report can be reloaded and printed later without re-reading the
// source document.
type ReportFile struct {
	Kind     string                `yaml:"kind"`
	Analysis *types.AnalysisResult `yaml:"analysis,omitempty"`
	Search   *types.SearchReport   `yaml:"search,omitempty"`
	Summary  ReportSummary         `yaml:"summary"`
}

// ReportSummary stores provenance for a saved report.
type ReportSummary struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	Source      string    `yaml:"source"`
}

// WriteAnalysisFile saves an analysis result to a YAML file.
func WriteAnalysisFile(path string, result *types.AnalysisResult) error {
	rf := ReportFile{
		Kind:     KindAnalysis,
		Analysis: result,
		Summary: ReportSummary{
			GeneratedAt: time.Now(),
			Source:      result.FilePath,
		},
	}
	return writeReportFile(path, &rf)
}

// WriteSearchFile saves a search report to a YAML file.
func WriteSearchFile(path string, report *types.SearchReport) error {
	rf := ReportFile{
		Kind:   KindSearch,
		Search: report,
		Summary: ReportSummary{
			GeneratedAt: time.Now(),
			Source:      report.FilePath,
		},
	}
	return writeReportFile(path, &rf)
}

func writeReportFile(path string, rf *ReportFile) error {
	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously saved report from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	switch rf.Kind {
	case KindAnalysis, KindSearch:
	default:
		return nil, fmt.Errorf("unknown report kind %q", rf.Kind)
	}
	return &rf, nil
}
