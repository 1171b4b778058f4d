// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyze"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Long: `Serve starts an HTTP server exposing the analysis pipeline: POST /upload
analyzes a multipart document upload, POST /search scans one for keywords,
and GET /health reports readiness. Uploads are deleted after each request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()
		if cmd.Flags().Changed("host") {
			cfg.Server.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr())
		return server.New(analyze.New(cfg.Summary), cfg.Server).Run()
	},
}

func init() {
	serveCmd.Flags().String("host", "", "listen address (overrides config)")
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
