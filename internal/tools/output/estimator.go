package output

// SizeEstimate is the result of classifying a text against a token budget.
type SizeEstimate struct {
	// Tokens is the approximate token count of the text.
	Tokens int `json:"tokens"`

	// WithinBudget is true when Tokens does not exceed the budget.
	WithinBudget bool `json:"withinBudget"`
}

// EstimateTokens returns the approximate token count of a text using the
// fixed CharsPerToken ratio, rounding up. Empty text estimates to zero.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + CharsPerToken - 1) / CharsPerToken
}

// Estimator classifies texts against a fixed token budget.
type Estimator struct {
	budget int
}

// NewEstimator creates an Estimator for the given budget. Non-positive
// budgets fall back to DefaultTokenBudget.
func NewEstimator(budget int) *Estimator {
	if budget <= 0 {
		budget = DefaultTokenBudget
	}
	return &Estimator{budget: budget}
}

// Budget returns the estimator's token budget.
func (e *Estimator) Budget() int {
	return e.budget
}

// Estimate returns the token count of the text and whether it fits the
// budget.
func (e *Estimator) Estimate(text string) SizeEstimate {
	tokens := EstimateTokens(text)
	return SizeEstimate{
		Tokens:       tokens,
		WithinBudget: tokens <= e.budget,
	}
}
