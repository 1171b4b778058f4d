// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

const rule = "----------------------------------------------------------------------"

// previewItems caps how many clauses, definitions, and obligations the
// formatted output shows per section.
const previewItems = 5

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAnalysis(w io.Writer, result *types.AnalysisResult) {
	fmt.Fprintln(w, "LEGAL DOCUMENT ANALYSIS RESULTS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Document: %s\n", result.FilePath)
	fmt.Fprintf(w, "Word count: %d\n", result.WordCount)
	fmt.Fprintf(w, "Text length: %d characters\n", result.TextLength)

	fmt.Fprintln(w, "\nSUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, result.Summary)

	if len(result.KeyPoints) > 0 {
		fmt.Fprintln(w, "\nKEY POINTS")
		fmt.Fprintln(w, rule)
		for _, point := range result.KeyPoints {
			fmt.Fprintf(w, "  %s\n", point)
		}
	}

	if len(result.Clauses) > 0 {
		fmt.Fprintf(w, "\nCLAUSES (%d)\n", len(result.Clauses))
		fmt.Fprintln(w, rule)
		for i, clause := range result.Clauses {
			if i == previewItems {
				fmt.Fprintf(w, "  ... and %d more\n", len(result.Clauses)-previewItems)
				break
			}
			fmt.Fprintf(w, "  Clause %s: %s\n", clause.Number, clip(clause.Text, 100))
		}
	}

	if len(result.Definitions) > 0 {
		fmt.Fprintf(w, "\nDEFINITIONS (%d)\n", len(result.Definitions))
		fmt.Fprintln(w, rule)
		for i, def := range result.Definitions {
			if i == previewItems {
				fmt.Fprintf(w, "  ... and %d more\n", len(result.Definitions)-previewItems)
				break
			}
			fmt.Fprintf(w, "  %q: %s\n", def.Term, clip(def.Definition, 80))
		}
	}

	if len(result.Obligations) > 0 {
		fmt.Fprintf(w, "\nOBLIGATIONS (%d)\n", len(result.Obligations))
		fmt.Fprintln(w, rule)
		for i, obl := range result.Obligations {
			if i == previewItems {
				fmt.Fprintf(w, "  ... and %d more\n", len(result.Obligations)-previewItems)
				break
			}
			fmt.Fprintf(w, "  - %s\n", clip(obl, 100))
		}
	}
}

func printSearch(w io.Writer, report *types.SearchReport) {
	fmt.Fprintln(w, "KEYWORD SEARCH RESULTS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Document: %s\n", report.FilePath)
	fmt.Fprintf(w, "Keywords: %s\n", strings.Join(report.Keywords, ", "))
	fmt.Fprintf(w, "Total matches: %d\n", report.TotalMatches)

	if report.TotalMatches == 0 {
		fmt.Fprintln(w, "\nNo matches found.")
		return
	}

	// Iterate in keyword order so output is deterministic.
	for _, keyword := range report.Keywords {
		matches, ok := report.Results[keyword]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\nKeyword %q (%d matches)\n", keyword, len(matches))
		fmt.Fprintln(w, rule)
		for i, match := range matches {
			fmt.Fprintf(w, "Match %d:\n  %s\n", i+1, match)
		}
	}
}

// clip shortens s for single-line display.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
