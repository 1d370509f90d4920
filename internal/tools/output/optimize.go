package output

import (
	"encoding/json"
)

// Optimizer shrinks response payloads before serialization. It reduces
// known entities, strips pruned and empty fields, and leaves array lengths
// and element order untouched.
type Optimizer struct {
	config *Config
	pruned map[string]bool
}

// NewOptimizer creates an Optimizer for the given config. A nil config
// falls back to DefaultConfig.
func NewOptimizer(config *Config) *Optimizer {
	if config == nil {
		config = DefaultConfig()
	}
	pruned := make(map[string]bool, len(config.PrunedFields))
	for _, field := range config.PrunedFields {
		pruned[field] = true
	}
	return &Optimizer{config: config, pruned: pruned}
}

// Optimize shrinks value when its serialized form would exceed the token
// budget. Payloads already within budget are returned unchanged, so
// optimizing twice yields the same result as optimizing once.
func (o *Optimizer) Optimize(value interface{}, budget int) interface{} {
	if value == nil {
		return nil
	}
	if budget <= 0 {
		budget = o.config.TokenBudget
	}
	if serialized, err := json.Marshal(value); err == nil {
		if EstimateTokens(string(serialized)) <= budget {
			return value
		}
	}
	return o.optimizeValue(value)
}

func (o *Optimizer) optimizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return o.optimizeMap(v)
	case []map[string]interface{}:
		optimized := make([]map[string]interface{}, len(v))
		for i, item := range v {
			optimized[i] = o.optimizeMap(item)
		}
		return optimized
	case []interface{}:
		optimized := make([]interface{}, len(v))
		for i, item := range v {
			optimized[i] = o.optimizeValue(item)
		}
		return optimized
	default:
		return value
	}
}

func (o *Optimizer) optimizeMap(value map[string]interface{}) map[string]interface{} {
	if value == nil {
		return nil
	}
	reduced := Reduce(value)
	optimized := make(map[string]interface{}, len(reduced))
	for key, field := range reduced {
		if o.pruned[key] {
			continue
		}
		field = o.optimizeValue(field)
		if isEmpty(field) {
			continue
		}
		optimized[key] = field
	}
	return optimized
}

// isEmpty reports whether a value carries no information worth serializing.
// Empty arrays are kept so callers can distinguish "none" from "unknown".
func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]interface{}:
		return len(v) == 0
	default:
		return false
	}
}
