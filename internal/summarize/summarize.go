// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize builds extractive summaries of legal document text and
// derives human-readable key points from the extraction results. Selection is
// a deterministic scoring pass over sentences, with no external model calls.
package summarize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

const (
	// DefaultMaxSentences is the summary length used when the caller does not
	// configure one.
	DefaultMaxSentences = 10

	// noContentMarker is returned verbatim when no sentence survives the
	// length filter. It is valid output, not an error.
	noContentMarker = "No content to summarize."

	// minSentenceLen filters out sentences too short to carry content.
	minSentenceLen = 20

	// longSentenceLen is the length past which a sentence is penalized.
	longSentenceLen = 500

	// keyPointPreviewLen caps obligation previews in the key-point list.
	keyPointPreviewLen = 150

	// earlyFraction marks the leading portion of the document whose sentences
	// get a position boost.
	earlyFraction = 0.2

	// positionDecay discounts sentences near the end by up to this fraction.
	positionDecay = 0.3
)

// legalVocabulary lists the terms that mark a sentence as legally important.
// Each distinct term found adds to the sentence score once, regardless of how
// often it repeats within the sentence.
var legalVocabulary = []string{
	"shall", "must", "agreement", "party", "parties", "obligation",
	"rights", "liability", "warranty", "indemnify", "breach",
	"termination", "jurisdiction", "dispute", "clause", "section",
	"payment", "compensation", "damages", "force majeure", "confidential",
}

// criticalTerms are the section topics reported in the key-point list when
// present anywhere in the text.
var criticalTerms = []string{
	"termination", "liability", "warranty", "indemnification",
	"dispute resolution", "confidentiality", "payment terms",
}

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
	digitRe       = regexp.MustCompile(`\d`)
)

type scoredSentence struct {
	text  string
	score float64
	index int
}

// Summarize returns an extractive summary of at most maxSentences sentences,
// in original document order, joined with single spaces. Sentences are split
// on runs of sentence-ending punctuation, filtered by length, scored by legal
// relevance, and the highest scorers kept. When no sentence survives the
// filter the fixed no-content marker is returned.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return noContentMarker
	}

	scored := scoreSentences(sentences)

	// Stable sort keeps original order among equal scores, so ties resolve to
	// the earlier sentence.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxSentences {
		scored = scored[:maxSentences]
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].index < scored[j].index
	})

	parts := make([]string, len(scored))
	for i, s := range scored {
		parts[i] = s.text
	}
	return strings.Join(parts, " ")
}

// splitSentences splits on sentence-ending punctuation and keeps trimmed
// sentences longer than the minimum length.
func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceEndRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > minSentenceLen {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// scoreSentences assigns each sentence a legal-relevance score. Scoring is
// additive per distinct vocabulary term, boosted for digits, quoted terms,
// and early position, penalized for excessive length, then multiplied by a
// position decay factor so later sentences are discounted up to 30%.
func scoreSentences(sentences []string) []scoredSentence {
	n := len(sentences)
	scored := make([]scoredSentence, 0, n)

	for idx, sentence := range sentences {
		score := 0.0
		lower := strings.ToLower(sentence)

		for _, term := range legalVocabulary {
			if strings.Contains(lower, term) {
				score += 2
			}
		}
		if digitRe.MatchString(sentence) {
			score++
		}
		if strings.Contains(sentence, `"`) {
			score += 2
		}
		if float64(idx) < float64(n)*earlyFraction {
			score++
		}
		if utf8.RuneCountInString(sentence) > longSentenceLen {
			score--
		}

		score *= 1.0 - float64(idx)/float64(n)*positionDecay

		scored = append(scored, scoredSentence{text: sentence, score: score, index: idx})
	}

	return scored
}

// KeyPoints derives a bullet list from the extraction results: structure
// counts, the first few defined terms and obligation previews, and a closing
// line naming which critical section topics appear anywhere in the text.
// Sections with no findings contribute nothing; an empty slice is valid
// output.
func KeyPoints(text string, clauses []types.Clause, definitions []types.Definition, obligations []string) []string {
	var points []string

	if len(clauses) > 0 {
		points = append(points, fmt.Sprintf("Document contains %d identifiable clauses/sections", len(clauses)))
	}

	if len(definitions) > 0 {
		points = append(points, fmt.Sprintf("Found %d key definitions", len(definitions)))
		for _, def := range head(definitions, 3) {
			points = append(points, fmt.Sprintf("• Defines '%s'", def.Term))
		}
	}

	if len(obligations) > 0 {
		points = append(points, fmt.Sprintf("Identified %d obligation statements", len(obligations)))
		for _, obl := range head(obligations, 3) {
			points = append(points, fmt.Sprintf("• %s...", prefix(obl, keyPointPreviewLen)))
		}
	}

	var found []string
	lower := strings.ToLower(text)
	for _, term := range criticalTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	if len(found) > 0 {
		points = append(points, "Critical sections present: "+strings.Join(found, ", "))
	}

	return points
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// prefix returns the first max characters of s. The caller appends its own
// ellipsis marker unconditionally, matching the key-point preview format.
func prefix(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
