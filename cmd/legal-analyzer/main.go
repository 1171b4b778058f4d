// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the legal-analyzer CLI. Documents are
// analyzed or searched directly from the command line, and the same pipeline
// can be served over HTTP with the serve subcommand.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the legal-analyzer CLI.
var rootCmd = &cobra.Command{
	Use:   "legal-analyzer",
	Short: "Analyze legal documents for clauses, definitions, and obligations",
	Long: `legal-analyzer extracts structure from legal documents in PDF, DOCX, or TXT
format: numbered clauses, quoted-term definitions, obligation sentences, a
keyword index with context snippets, and an extractive summary.

Each operation is a subcommand: analyze, search, report, formats, and serve.
Results print as formatted text, JSON, or YAML report files that can be
reloaded later with the report subcommand.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./legal-analyzer.yaml or ~/.config/legal-analyzer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("legal-analyzer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "legal-analyzer"))
		}
	}

	viper.SetEnvPrefix("LEGAL_ANALYZER")
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("server.host", defaults.Server.Host)
	viper.SetDefault("server.port", defaults.Server.Port)
	viper.SetDefault("server.upload_dir", defaults.Server.UploadDir)
	viper.SetDefault("server.max_upload_mb", defaults.Server.MaxUploadMB)
	viper.SetDefault("summary.max_sentences", defaults.Summary.MaxSentences)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the effective configuration from viper.
func appConfig() types.AppConfig {
	return types.AppConfig{
		Server: types.ServerConfig{
			Host:        viper.GetString("server.host"),
			Port:        viper.GetInt("server.port"),
			UploadDir:   viper.GetString("server.upload_dir"),
			MaxUploadMB: viper.GetInt64("server.max_upload_mb"),
		},
		Summary: types.SummaryConfig{
			MaxSentences: viper.GetInt("summary.max_sentences"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
