// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyze"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Print a previously saved report file",
	Long: `Report loads a YAML report file written by analyze --save or search --save
and prints it without re-reading the source document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		rf, err := analyze.ReadReportFile(args[0])
		if err != nil {
			return err
		}

		switch rf.Kind {
		case analyze.KindAnalysis:
			if asJSON {
				return writeJSON(os.Stdout, rf.Analysis)
			}
			printAnalysis(os.Stdout, rf.Analysis)
		case analyze.KindSearch:
			if asJSON {
				return writeJSON(os.Stdout, rf.Search)
			}
			printSearch(os.Stdout, rf.Search)
		}

		fmt.Fprintf(os.Stderr, "Report generated %s from %s\n",
			rf.Summary.GeneratedAt.Format("2006-01-02 15:04:05"), rf.Summary.Source)
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(reportCmd)
}
