// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyze"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported file formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported file formats:")
		for _, ext := range analyze.SupportedFormats() {
			fmt.Printf("  %s\n", ext)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
