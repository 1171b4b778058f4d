// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchReport wraps keyword search results for one document. Keywords appear
// in the map exactly as supplied by the caller; keywords with zero matches
// carry no key at all.
type SearchReport struct {
	Success  bool     `json:"success" yaml:"success"`
	FilePath string   `json:"file_path" yaml:"file_path"`
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Results maps each matched keyword to its context snippets, at most ten
	// per keyword, in order of occurrence.
	Results map[string][]string `json:"results" yaml:"results"`

	// TotalMatches is the sum of all per-keyword snippet counts.
	TotalMatches int `json:"total_matches" yaml:"total_matches"`
}
