// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates clauses, definitions, and obligation sentences in
// legal document text using fixed pattern families. Empty findings are normal
// output, never an error, and every size cap is enforced here at extraction
// time: collaborators receive already-truncated data.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

const (
	// maxPreviewLen caps clause and obligation previews, in characters.
	maxPreviewLen = 200

	// clauseContextLines is how many lines of context a clause carries,
	// including the matching line itself.
	clauseContextLines = 5

	// Context window around a definition match, in characters.
	defContextBefore = 50
	defContextAfter  = 150

	// minSentenceLen filters out sentences too short to be obligations.
	minSentenceLen = 20

	maxDefinitions = 20
	maxObligations = 15
)

// clausePatterns are tried in fixed order per line; the first hit wins and
// the line is never double-counted. The second family deliberately requires
// an uppercase letter after the list marker.
var clausePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|\n)\s*(?:CLAUSE|Article|Section|Paragraph)\s+(\d+[.\d]*)[:\s]`),
	regexp.MustCompile(`(?:^|\n)\s*(\d+)\.\s+[A-Z]`),
}

// definitionPattern captures a quoted term followed by defining language.
var definitionPattern = regexp.MustCompile(`(?i)"([^"]+)"\s+(?:means|shall mean|refers to|is defined as)`)

// obligationPatterns qualify a sentence as an obligation: modal verbs first,
// then nominal markers.
var obligationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:shall|must|will|is required to|is obligated to|agrees to)\b`),
	regexp.MustCompile(`(?i)\b(?:responsibilities?|obligations?|duties)\b`),
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// Clauses scans the text line by line and returns every clause marker found,
// in order of appearance. Each clause carries the matching line plus up to
// four following lines as context, truncated to 200 characters. The clause
// number is the captured identifier, or a sequential counter when the
// pattern captured nothing.
func Clauses(text string) []types.Clause {
	lines := strings.Split(text, "\n")
	var clauses []types.Clause

	for i, line := range lines {
		for _, re := range clausePatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			end := i + clauseContextLines
			if end > len(lines) {
				end = len(lines)
			}
			context := strings.TrimSpace(strings.Join(lines[i:end], " "))

			number := m[1]
			if number == "" {
				number = strconv.Itoa(len(clauses) + 1)
			}

			clauses = append(clauses, types.Clause{
				Number: number,
				Text:   truncate(context, maxPreviewLen),
			})
			break
		}
	}

	return clauses
}

// Definitions scans the whole text for quoted terms followed by defining
// language and returns the first 20, in order of appearance. Each definition
// carries a snippet from 50 characters before the match to 150 after it,
// clamped to the text bounds.
func Definitions(text string) []types.Definition {
	var defs []types.Definition

	for _, m := range definitionPattern.FindAllStringSubmatchIndex(text, -1) {
		if len(defs) == maxDefinitions {
			break
		}
		term := text[m[2]:m[3]]
		context := strings.TrimSpace(window(text, m[0], m[1], defContextBefore, defContextAfter))
		defs = append(defs, types.Definition{Term: term, Definition: context})
	}

	return defs
}

// Obligations splits the text into sentences and returns the first 15 that
// carry obligation language and exceed the minimum length, each truncated to
// 200 characters, in original order.
func Obligations(text string) []string {
	var obligations []string

	for _, sentence := range sentenceEndRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if len(obligations) == maxObligations {
			break
		}

		for _, re := range obligationPatterns {
			if !re.MatchString(sentence) {
				continue
			}
			if utf8.RuneCountInString(sentence) > minSentenceLen {
				obligations = append(obligations, truncate(sentence, maxPreviewLen))
			}
			break
		}
	}

	return obligations
}

// window returns the substring from before characters ahead of the byte
// offset start to after characters past the byte offset end, clamped to the
// text bounds. Counts are characters, not bytes, to keep windowing stable on
// non-ASCII text.
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

// truncate caps s at max characters, appending an ellipsis marker when it was
// longer.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
