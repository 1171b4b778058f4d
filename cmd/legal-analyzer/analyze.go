// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyze"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a legal document",
	Long: `Analyze decodes a PDF, DOCX, or TXT document and extracts its structure:
numbered clauses with context, quoted-term definitions, obligation sentences,
an extractive summary, and a key-point list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		savePath, _ := cmd.Flags().GetString("save")
		maxSentences, _ := cmd.Flags().GetInt("max-sentences")

		cfg := appConfig().Summary
		if cmd.Flags().Changed("max-sentences") {
			cfg.MaxSentences = maxSentences
		}

		result, err := analyze.New(cfg).Analyze(args[0])
		if err != nil {
			return err
		}

		if savePath != "" {
			if err := analyze.WriteAnalysisFile(savePath, result); err != nil {
				return err
			}
		}

		if asJSON {
			return writeJSON(os.Stdout, result)
		}
		printAnalysis(os.Stdout, result)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output results as JSON")
	analyzeCmd.Flags().String("save", "", "save results to a YAML report file")
	analyzeCmd.Flags().Int("max-sentences", types.DefaultConfig().Summary.MaxSentences, "maximum sentences in the summary")

	rootCmd.AddCommand(analyzeCmd)
}
