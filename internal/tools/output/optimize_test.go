package output

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestOptimizeFastPathLeavesSmallPayloadsAlone(t *testing.T) {
	optimizer := NewOptimizer(DefaultConfig())
	payload := map[string]interface{}{
		"__typename": "Post",
		"id":         "p1",
		"txHash":     "0xdead",
	}

	optimized := optimizer.Optimize(payload, 0)

	if !reflect.DeepEqual(optimized, payload) {
		t.Errorf("expected payload within budget to pass through, got %#v", optimized)
	}
}

func TestOptimizePrunesAndReduces(t *testing.T) {
	config := DefaultConfig()
	config.TokenBudget = 10
	optimizer := NewOptimizer(config)

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"__typename": "Post",
				"id":         "p1",
				"metadata":   map[string]interface{}{"content": strings.Repeat("x", 200)},
				"txHash":     "0xdead",
			},
		},
		"contentUri": "ipfs://blob",
		"empty":      "",
		"nothing":    nil,
	}

	optimized, ok := optimizer.Optimize(payload, config.TokenBudget).(map[string]interface{})
	if !ok {
		t.Fatalf("expected map result")
	}

	for _, key := range []string{"contentUri", "empty", "nothing"} {
		if _, present := optimized[key]; present {
			t.Errorf("expected %q removed, got %v", key, optimized)
		}
	}

	items, ok := optimized["items"].([]map[string]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("expected one item preserved, got %v", optimized["items"])
	}
	if _, present := items[0]["txHash"]; present {
		t.Errorf("expected txHash dropped from reduced post, got %v", items[0])
	}
	if items[0]["type"] != "post" {
		t.Errorf("expected reduced post shape, got %v", items[0])
	}
}

func TestOptimizeNeverDropsArrayElements(t *testing.T) {
	config := DefaultConfig()
	config.TokenBudget = 1
	optimizer := NewOptimizer(config)

	items := make([]interface{}, 20)
	for i := range items {
		items[i] = map[string]interface{}{"id": strings.Repeat("x", 50)}
	}

	optimized, ok := optimizer.Optimize(items, config.TokenBudget).([]interface{})
	if !ok {
		t.Fatalf("expected slice result")
	}
	if len(optimized) != len(items) {
		t.Errorf("expected %d elements preserved, got %d", len(items), len(optimized))
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	config := DefaultConfig()
	config.TokenBudget = 5
	optimizer := NewOptimizer(config)

	payload := map[string]interface{}{
		"__typename": "Post",
		"id":         "p1",
		"metadata":   map[string]interface{}{"content": strings.Repeat("x", 100)},
		"stats":      map[string]interface{}{"reactions": float64(3)},
	}

	once := optimizer.Optimize(payload, config.TokenBudget)
	twice := optimizer.Optimize(once, config.TokenBudget)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second optimization changed the result: %#v vs %#v", once, twice)
	}
}

func TestOptimizeNeverGrowsPayload(t *testing.T) {
	config := DefaultConfig()
	config.TokenBudget = 1
	optimizer := NewOptimizer(config)

	payload := map[string]interface{}{
		"__typename": "Account",
		"address":    "0xabc",
		"metadata": map[string]interface{}{
			"name":    "Alice",
			"picture": strings.Repeat("x", 100),
		},
	}

	before, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	after, err := json.Marshal(optimizer.Optimize(payload, config.TokenBudget))
	if err != nil {
		t.Fatal(err)
	}
	if len(after) > len(before) {
		t.Errorf("optimization grew the payload: %d > %d bytes", len(after), len(before))
	}
}

func TestOptimizeLeavesPrimitivesAlone(t *testing.T) {
	optimizer := NewOptimizer(DefaultConfig())
	for _, value := range []interface{}{"text", float64(42), true, nil} {
		if got := optimizer.Optimize(value, 1); !reflect.DeepEqual(got, value) {
			t.Errorf("expected %v unchanged, got %v", value, got)
		}
	}
}
