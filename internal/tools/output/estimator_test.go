package output

import (
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty text", text: "", expected: 0},
		{name: "single char rounds up", text: "a", expected: 1},
		{name: "exact multiple", text: "abcd", expected: 1},
		{name: "one over the boundary", text: "abcde", expected: 2},
		{name: "longer text", text: strings.Repeat("x", 100), expected: 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateTokens(tc.text); got != tc.expected {
				t.Errorf("EstimateTokens(%q) = %d, expected %d", tc.text, got, tc.expected)
			}
		})
	}
}

func TestEstimatorBudget(t *testing.T) {
	estimator := NewEstimator(10)

	within := estimator.Estimate(strings.Repeat("x", 40))
	if !within.WithinBudget {
		t.Errorf("expected 40 chars to fit a 10 token budget, got %+v", within)
	}
	if within.Tokens != 10 {
		t.Errorf("expected 10 tokens, got %d", within.Tokens)
	}

	over := estimator.Estimate(strings.Repeat("x", 41))
	if over.WithinBudget {
		t.Errorf("expected 41 chars to exceed a 10 token budget, got %+v", over)
	}
}

func TestNewEstimatorDefaultsBudget(t *testing.T) {
	estimator := NewEstimator(0)
	if estimator.Budget() != DefaultTokenBudget {
		t.Errorf("expected default budget %d, got %d", DefaultTokenBudget, estimator.Budget())
	}
}
