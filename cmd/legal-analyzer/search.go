// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyze"
)

var searchCmd = &cobra.Command{
	Use:   "search <file>",
	Short: "Search a document for keywords",
	Long: `Search scans a PDF, DOCX, or TXT document for case-insensitive keyword
occurrences and prints each match with surrounding context, the matched text
visibly marked.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("keywords")
		asJSON, _ := cmd.Flags().GetBool("json")
		savePath, _ := cmd.Flags().GetString("save")

		var keywords []string
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			return fmt.Errorf("at least one non-empty keyword is required")
		}

		report, err := analyze.New(appConfig().Summary).Search(args[0], keywords)
		if err != nil {
			return err
		}

		if savePath != "" {
			if err := analyze.WriteSearchFile(savePath, report); err != nil {
				return err
			}
		}

		if asJSON {
			return writeJSON(os.Stdout, report)
		}
		printSearch(os.Stdout, report)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("keywords", "", "comma-separated keywords to search (required)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save results to a YAML report file")
	searchCmd.MarkFlagRequired("keywords")

	rootCmd.AddCommand(searchCmd)
}
