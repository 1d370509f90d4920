package output

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		count    int
		hasMore  bool
		expected string
	}{
		{
			name:     "plural with more pages",
			kind:     "account",
			count:    3,
			hasMore:  true,
			expected: `Found 3 accounts (more available). Use show="detailed" for full data.`,
		},
		{
			name:     "singular",
			kind:     "post",
			count:    1,
			hasMore:  false,
			expected: `Found 1 post. Use show="detailed" for full data.`,
		},
		{
			name:     "empty result",
			kind:     "group",
			count:    0,
			hasMore:  false,
			expected: `Found 0 groups. Use show="detailed" for full data.`,
		},
		{
			name:     "unknown kind falls back",
			kind:     "widget",
			count:    2,
			hasMore:  false,
			expected: `Found 2 results. Use show="detailed" for full data.`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summarize(tc.kind, tc.count, tc.hasMore); got != tc.expected {
				t.Errorf("Summarize() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestSummarizeSingle(t *testing.T) {
	got := SummarizeSingle("account", "lens/alice")
	expected := `Account lens/alice found. Use show="detailed" for full data.`
	if got != expected {
		t.Errorf("SummarizeSingle() = %q, expected %q", got, expected)
	}
}

func TestSummaryContainsNoStructuredData(t *testing.T) {
	summary := Summarize("post", 5, true)
	if strings.ContainsAny(summary, "{}[]") {
		t.Errorf("summary must be prose only, got %q", summary)
	}
}

func TestSampleSummary(t *testing.T) {
	items := []map[string]interface{}{
		{"username": "lens/alice", "bio": "builder"},
		{"id": "p1", "content": "hello world"},
		{"name": "Photo App"},
	}

	got := SampleSummary(items, 2)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 sample lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "- lens/alice: builder" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "- p1: hello world" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestSampleSummaryClipsLongContent(t *testing.T) {
	items := []map[string]interface{}{
		{"id": "p1", "content": strings.Repeat("a", 200)},
	}

	got := SampleSummary(items, 5)

	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected clipped content, got %q", got)
	}
	if len(got) > 100 {
		t.Errorf("expected a short sample line, got %d chars", len(got))
	}
}

func TestSampleSummaryEmpty(t *testing.T) {
	if got := SampleSummary(nil, 3); got != "" {
		t.Errorf("expected empty sample, got %q", got)
	}
}
