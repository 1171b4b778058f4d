// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

func TestSummarize_EmptyText(t *testing.T) {
	if got := Summarize("", DefaultMaxSentences); got != noContentMarker {
		t.Errorf("Summarize(\"\") = %q, want the no-content marker", got)
	}
}

func TestSummarize_OnlyShortSentences(t *testing.T) {
	text := "Short one. Tiny. Also brief!"
	if got := Summarize(text, DefaultMaxSentences); got != noContentMarker {
		t.Errorf("got %q, want the no-content marker for sub-minimum sentences", got)
	}
}

func TestSummarize_RespectsMaxSentences(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "The agreement covers obligation number %d for both parties. ", i)
	}

	summary := Summarize(b.String(), 3)

	// Every source sentence contains "agreement", so sentence count in the
	// joined summary equals occurrences of that word.
	if got := strings.Count(summary, "agreement"); got != 3 {
		t.Errorf("summary has %d sentences, want 3: %q", got, summary)
	}
}

func TestSummarize_PreservesSourceOrder(t *testing.T) {
	text := "The parties enter into this binding agreement today. " +
		"Some unrelated filler text about nothing in particular here. " +
		"The liability of each party shall be limited to damages incurred."

	summary := Summarize(text, 2)

	first := strings.Index(summary, "binding agreement")
	second := strings.Index(summary, "liability")
	if first == -1 || second == -1 {
		t.Fatalf("summary should keep the two legally dense sentences: %q", summary)
	}
	if first > second {
		t.Errorf("selected sentences out of source order: %q", summary)
	}
}

func TestSummarize_PrefersLegallyDenseSentences(t *testing.T) {
	text := "The weather on the day of signing was pleasant and unremarkable overall. " +
		"The Contractor shall indemnify the Client against all damages and liability claims."

	summary := Summarize(text, 1)

	if !strings.Contains(summary, "indemnify") {
		t.Errorf("summary %q should select the obligation-bearing sentence", summary)
	}
}

func TestSummarize_ZeroMaxFallsBackToDefault(t *testing.T) {
	text := "The agreement binds the parties to their respective obligations hereunder."
	if got := Summarize(text, 0); got != text[:len(text)-1] {
		t.Errorf("got %q, want the single sentence without its terminator", got)
	}
}

func TestKeyPoints_Empty(t *testing.T) {
	points := KeyPoints("nothing legal here", nil, nil, nil)
	if len(points) != 0 {
		t.Errorf("want no key points for empty findings, got %v", points)
	}
}

func TestKeyPoints_Full(t *testing.T) {
	text := "This agreement covers termination and liability and confidentiality."
	clauses := []types.Clause{{Number: "1", Text: "CLAUSE 1"}, {Number: "2", Text: "CLAUSE 2"}}
	definitions := []types.Definition{
		{Term: "Alpha"}, {Term: "Beta"}, {Term: "Gamma"}, {Term: "Delta"},
	}
	obligations := []string{"The party shall perform all duties promptly and completely."}

	points := KeyPoints(text, clauses, definitions, obligations)

	want := []string{
		"Document contains 2 identifiable clauses/sections",
		"Found 4 key definitions",
		"• Defines 'Alpha'",
		"• Defines 'Beta'",
		"• Defines 'Gamma'",
		"Identified 1 obligation statements",
		"• The party shall perform all duties promptly and completely....",
		"Critical sections present: termination, liability, confidentiality",
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(points), len(want), points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("points[%d] = %q, want %q", i, points[i], want[i])
		}
	}
}

func TestKeyPoints_ObligationPreviewTruncated(t *testing.T) {
	long := "The party shall " + strings.Repeat("x", 200)
	points := KeyPoints("", nil, nil, []string{long})
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2: %v", len(points), points)
	}
	bullet := points[1]
	if !strings.HasSuffix(bullet, "...") {
		t.Errorf("obligation bullet should end with ellipsis: %q", bullet)
	}
	// "• " plus 150 preview characters plus the marker.
	if n := len([]rune(bullet)); n != 2+keyPointPreviewLen+3 {
		t.Errorf("bullet length = %d, want %d", n, 2+keyPointPreviewLen+3)
	}
}

func TestKeyPoints_CriticalTermsCaseInsensitive(t *testing.T) {
	points := KeyPoints("TERMINATION AND PAYMENT TERMS", nil, nil, nil)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1: %v", len(points), points)
	}
	if points[0] != "Critical sections present: termination, payment terms" {
		t.Errorf("unexpected critical-terms line: %q", points[0])
	}
}
