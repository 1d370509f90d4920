package output

// Default limits for response shaping.
// These are tuned for typical LLM context windows.
const (
	// DefaultTokenBudget is the default maximum response size in tokens.
	DefaultTokenBudget = 25000

	// AbsoluteMaxTokenBudget is the absolute maximum configurable budget.
	AbsoluteMaxTokenBudget = 200000

	// CharsPerToken is the fixed character-to-token approximation used
	// throughout the pipeline. It is a documented heuristic, not a real
	// tokenizer.
	CharsPerToken = 4

	// TruncationHeadroom is the number of characters reserved below the
	// budget for the truncation notice under the truncate policy.
	TruncationHeadroom = 100

	// DefaultLimit is the default number of items requested per query.
	DefaultLimit = 10
)

// OverflowPolicy selects what happens when a composed response exceeds the
// token budget.
type OverflowPolicy string

const (
	// OverflowPolicyTruncate hard-cuts the text below the budget and
	// appends a truncation notice. Safe for prose, unsafe for JSON.
	OverflowPolicyTruncate OverflowPolicy = "truncate"

	// OverflowPolicyRefuse returns an error payload naming the measured
	// token count and concrete remedies instead of emitting the text.
	OverflowPolicyRefuse OverflowPolicy = "refuse"
)

// ValidOverflowPolicy reports whether s names a known policy.
func ValidOverflowPolicy(s string) bool {
	switch OverflowPolicy(s) {
	case OverflowPolicyTruncate, OverflowPolicyRefuse:
		return true
	}
	return false
}

// Config holds configuration for response shaping.
type Config struct {
	// TokenBudget is the maximum response size in tokens.
	// Default: 25000, absolute max: 200000.
	TokenBudget int `json:"tokenBudget" yaml:"tokenBudget"`

	// OverflowPolicy forces one overflow policy for every show mode.
	// When empty, each mode uses its own default: truncate for concise
	// (the text is prose), refuse for detailed and raw (the text is
	// JSON that must not be silently cut).
	OverflowPolicy OverflowPolicy `json:"overflowPolicy,omitempty" yaml:"overflowPolicy,omitempty"`

	// DefaultLimit is the item count requested when a tool call does not
	// specify one.
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`

	// PrunedFields lists field names removed by the structure optimizer.
	// Default: DefaultPrunedFields.
	PrunedFields []string `json:"prunedFields,omitempty" yaml:"prunedFields,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TokenBudget:  DefaultTokenBudget,
		DefaultLimit: DefaultLimit,
		PrunedFields: DefaultPrunedFields(),
	}
}

// DefaultPrunedFields returns the default list of field names removed by
// the structure optimizer. These are fields that rarely help an agent
// understand a social-graph entity.
func DefaultPrunedFields() []string {
	return []string{
		// GraphQL type discriminants are noise once shaping is done
		"__typename",
		// Transaction hashes and content URIs point at infrastructure
		"txHash",
		"contentUri",
		"metadataUri",
		"rawUri",
		"uri",
		"snapshotUrl",
		// Media and asset links cannot be followed by a text agent
		"picture",
		"coverPicture",
		"icon",
		"logo",
		"image",
		"audio",
		"video",
		"attachments",
		"asset",
		// Legal and platform links on app records
		"privacyPolicy",
		"termsOfService",
		"platforms",
		// UI and styling fields
		"appearance",
		"theme",
		"accentColor",
		// Raw and encrypted metadata blobs
		"encryptedWith",
		"encryptedContent",
		"attributes",
		// Viewer-specific operation flags and protocol rule wiring
		"operations",
		"rules",
		// Pagination and connection wrappers
		"pageInfo",
		"cursor",
		"edges",
		"node",
		// Duplicate timestamp variants and internal ranking
		"indexedAt",
		"snapshotAt",
		"updatedAt",
		"score",
		// Low-value content metadata
		"locale",
		"slug",
	}
}

// Validate validates the configuration and applies absolute limits.
// It returns a validated copy with out-of-range values capped.
func (c *Config) Validate() *Config {
	validated := *c

	if validated.TokenBudget <= 0 {
		validated.TokenBudget = DefaultTokenBudget
	}
	if validated.TokenBudget > AbsoluteMaxTokenBudget {
		validated.TokenBudget = AbsoluteMaxTokenBudget
	}
	if validated.DefaultLimit <= 0 {
		validated.DefaultLimit = DefaultLimit
	}
	if !ValidOverflowPolicy(string(validated.OverflowPolicy)) {
		validated.OverflowPolicy = ""
	}
	if len(validated.PrunedFields) == 0 {
		validated.PrunedFields = DefaultPrunedFields()
	}

	return &validated
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.PrunedFields != nil {
		clone.PrunedFields = make([]string, len(c.PrunedFields))
		copy(clone.PrunedFields, c.PrunedFields)
	}
	return &clone
}
