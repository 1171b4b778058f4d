// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search locates case-insensitive keyword occurrences in document
// text and returns bounded context windows with the matches marked. Zero
// matches is normal output, never an error.
package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// contextWindow is how many characters of context each snippet carries on
	// either side of the match.
	contextWindow = 100

	// maxMatchesPerKeyword caps retained snippets per keyword.
	maxMatchesPerKeyword = 10
)

// Keywords scans text for each keyword in the caller-supplied order and
// returns a map from keyword (case preserved) to context snippets. The scan
// is literal and case-insensitive over non-overlapping occurrences. Within
// each trimmed window the match is re-applied and every occurrence wrapped in
// a visible **marker**. Keywords with no occurrences are absent from the map;
// an empty keyword list yields an empty map.
func Keywords(text string, keywords []string) map[string][]string {
	results := make(map[string][]string)

	for _, keyword := range keywords {
		// QuoteMeta guarantees a valid pattern for arbitrary keyword input.
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))

		var matches []string
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if len(matches) == maxMatchesPerKeyword {
				break
			}
			snippet := strings.TrimSpace(window(text, loc[0], loc[1], contextWindow, contextWindow))
			matches = append(matches, re.ReplaceAllString(snippet, "**${0}**"))
		}

		if len(matches) > 0 {
			results[keyword] = matches
		}
	}

	return results
}

// Total returns the sum of snippet counts across all keywords.
func Total(results map[string][]string) int {
	total := 0
	for _, m := range results {
		total += len(m)
	}
	return total
}

// window returns the substring from before characters ahead of the byte
// offset start to after characters past the byte offset end, clamped to the
// text bounds. Counts are characters, not bytes.
func window(text string, start, end, before, after int) string {
	ws := start
	for i := 0; i < before && ws > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:ws])
		ws -= size
	}
	we := end
	for i := 0; i < after && we < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[we:])
		we += size
	}
	return text[ws:we]
}
