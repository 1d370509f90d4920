// Package output provides response shaping and size management for MCP tool
// responses.
//
// The Lens API returns large, protocol-heavy field bags that overwhelm LLM
// context windows. This package turns upstream results into agent-sized
// responses in three steps: per-entity reduction, generic structural
// pruning, and token-budget enforcement.
//
// # Key Features
//
// Entity Reduction: known entity shapes (posts, accounts, groups, apps,
// usernames) are projected down to identity, author, textual content, and
// aggregate counters. See [Reduce].
//
// Structure Optimization: arbitrary nested results are walked recursively,
// dropping a fixed denylist of low-value field names (hashes, URIs, media
// links, viewer flags, pagination wrappers). Array elements are never
// dropped, only their internal fields. See [Optimize].
//
// Size Estimation: response size is approximated at four characters per
// token and classified against a configurable budget. See [Estimator].
//
// Formatting: tool handlers choose between three show modes. "concise"
// returns a one-line natural-language summary, "detailed" returns the
// summary plus the optimized JSON body, "raw" returns the result verbatim.
// When a detailed or raw response exceeds the token budget it is refused
// with concrete remedies rather than truncated, because truncated JSON
// would silently lose data the optimizer promised to keep. See [Formatter].
//
// # Configuration
//
// Behavior is controlled via [Config]:
//
//	cfg := output.DefaultConfig()
//	cfg.TokenBudget = 10000
//	cfg.OverflowPolicy = output.OverflowPolicyRefuse
//
// All transforms are pure: inputs are never mutated and the same input
// always produces the same output.
package output
