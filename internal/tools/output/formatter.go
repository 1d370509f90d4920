package output

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ShowMode selects how much of a response is returned to the caller.
type ShowMode string

const (
	// ShowConcise returns a prose summary without structured data.
	ShowConcise ShowMode = "concise"
	// ShowDetailed returns the summary plus the optimized JSON payload.
	ShowDetailed ShowMode = "detailed"
	// ShowRaw returns the upstream payload verbatim.
	ShowRaw ShowMode = "raw"
)

// ParseShowMode maps a user-supplied show value to a ShowMode. Unknown and
// empty values fall back to ShowConcise.
func ParseShowMode(value string) ShowMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ShowDetailed):
		return ShowDetailed
	case string(ShowRaw):
		return ShowRaw
	default:
		return ShowConcise
	}
}

// Payload is a formatted tool response. IsError marks refused payloads;
// refusal is a normal outcome, not a fault, so Format never returns a Go
// error for it.
type Payload struct {
	Text    string
	IsError bool
}

const truncationNotice = "\n\n[Output truncated to fit the token budget. Use a smaller limit or paginate with cursor.]"

// Formatter renders optimized data in one of the show modes and enforces
// the token budget on the result.
type Formatter struct {
	config    *Config
	estimator *Estimator
	optimizer *Optimizer
}

// NewFormatter creates a Formatter for the given config. A nil config
// falls back to DefaultConfig.
func NewFormatter(config *Config) *Formatter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Formatter{
		config:    config,
		estimator: NewEstimator(config.TokenBudget),
		optimizer: NewOptimizer(config),
	}
}

// Format renders data in the requested mode. The summary is prose supplied
// by the operation; concise responses consist of it alone, detailed
// responses prepend it to the serialized payload, raw responses ignore it.
func (f *Formatter) Format(data interface{}, mode ShowMode, summary string) Payload {
	switch mode {
	case ShowRaw:
		return f.formatSerialized(data, mode, "")
	case ShowDetailed:
		return f.formatSerialized(data, mode, summary)
	default:
		return f.enforce(summary, ShowConcise)
	}
}

func (f *Formatter) formatSerialized(data interface{}, mode ShowMode, summary string) Payload {
	if mode == ShowDetailed {
		data = f.optimizer.Optimize(data, f.config.TokenBudget)
	}
	serialized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return Payload{
			Text:    fmt.Sprintf("failed to serialize response: %v", err),
			IsError: true,
		}
	}
	text := string(serialized)
	if summary != "" {
		text = summary + "\n\n" + text
	}
	return f.enforce(text, mode)
}

// enforce applies the overflow policy to a rendered text. Concise prose is
// safe to cut mid-string, so it truncates by default; JSON-bearing modes
// refuse instead of emitting a payload that no longer parses.
func (f *Formatter) enforce(text string, mode ShowMode) Payload {
	estimate := f.estimator.Estimate(text)
	if estimate.WithinBudget {
		return Payload{Text: text}
	}
	if f.policyFor(mode) == OverflowPolicyTruncate {
		return Payload{Text: truncate(text, f.config.TokenBudget)}
	}
	return Payload{Text: refusal(estimate.Tokens, f.config.TokenBudget), IsError: true}
}

func (f *Formatter) policyFor(mode ShowMode) OverflowPolicy {
	if f.config.OverflowPolicy != "" {
		return f.config.OverflowPolicy
	}
	if mode == ShowConcise {
		return OverflowPolicyTruncate
	}
	return OverflowPolicyRefuse
}

func truncate(text string, budget int) string {
	max := budget*CharsPerToken - TruncationHeadroom
	if max < 0 {
		max = 0
	}
	if len(text) <= max {
		return text
	}
	return text[:max] + truncationNotice
}

func refusal(tokens, budget int) string {
	return fmt.Sprintf(
		"Response size (~%d tokens) exceeds the %d token budget. "+
			"Use show=\"concise\" for a summary, lower the limit, or paginate with cursor to narrow the result.",
		tokens, budget)
}
