// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ServerConfig holds settings for the web front end.
type ServerConfig struct {
	// Host is the listen address (default "0.0.0.0").
	Host string `json:"host" yaml:"host"`

	// Port is the listen port (default 5000).
	Port int `json:"port" yaml:"port"`

	// UploadDir is the directory uploads are written to for the duration of a
	// request (default "uploads"). Files are removed once the response is sent.
	UploadDir string `json:"upload_dir" yaml:"upload_dir"`

	// MaxUploadMB is the maximum accepted upload size in MiB (default 16).
	MaxUploadMB int64 `json:"max_upload_mb" yaml:"max_upload_mb"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c ServerConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// SummaryConfig holds settings for the summarizer.
type SummaryConfig struct {
	// MaxSentences is the maximum number of sentences in a summary (default 10).
	MaxSentences int `json:"max_sentences" yaml:"max_sentences"`
}

// AppConfig groups all component configurations. Extraction caps and pattern
// tables are fixed constants owned by their components, not configuration.
type AppConfig struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        5000,
			UploadDir:   "uploads",
			MaxUploadMB: 16,
		},
		Summary: SummaryConfig{
			MaxSentences: 10,
		},
	}
}
