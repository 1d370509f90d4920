package lens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
)

// newTestClient starts an httptest server answering every GraphQL POST with
// the given handler and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&ClientConfig{APIURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	return client
}

// respondJSON writes a GraphQL data response built from the given root and
// payload.
func respondJSON(t *testing.T, w http.ResponseWriter, root string, payload interface{}) {
	t.Helper()

	body := map[string]interface{}{"data": map[string]interface{}{root: payload}}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(&ClientConfig{APIURL: "api.lens.xyz/graphql"}); err == nil {
		t.Error("expected error for URL without scheme")
	}

	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient(nil) error: %v", err)
	}
	if client == nil {
		t.Fatal("NewClient(nil) returned nil client")
	}
}

func TestSearchAccounts(t *testing.T) {
	next := "cursor-2"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Variables["query"] != "alice" {
			t.Errorf("query variable = %v, want alice", req.Variables["query"])
		}
		if req.Variables["pageSize"] != "FIFTY" {
			t.Errorf("pageSize variable = %v, want FIFTY", req.Variables["pageSize"])
		}

		respondJSON(t, w, "accounts", map[string]interface{}{
			"items": []map[string]interface{}{
				{"__typename": "Account", "address": "0xabc"},
				{"__typename": "Account", "address": "0xdef"},
			},
			"pageInfo": map[string]interface{}{"next": next},
		})
	})

	env, err := client.SearchAccounts(context.Background(), "alice", PageRequest{Size: PageSizeFifty})
	if err != nil {
		t.Fatalf("SearchAccounts() error: %v", err)
	}
	if len(env.Items) != 2 {
		t.Errorf("got %d items, want 2", len(env.Items))
	}
	if !env.PageInfo.HasNext {
		t.Error("HasNext = false, want true")
	}
	if env.PageInfo.NextCursor != next {
		t.Errorf("NextCursor = %q, want %q", env.PageInfo.NextCursor, next)
	}
}

func TestGraphQLErrorSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"rate limited"}]}`))
	})

	_, err := client.SearchPosts(context.Background(), "anything", PageRequest{})
	if err == nil {
		t.Fatal("expected error from GraphQL errors field")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error %q does not carry the upstream message", err)
	}
}

func TestHTTPErrorSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := client.Post(context.Background(), "p1")
	if err == nil {
		t.Fatal("expected error for HTTP 502")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q does not mention the status code", err)
	}
}

func TestMissingObjectIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, "post", nil)
	})

	post, err := client.Post(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("Post() error: %v", err)
	}
	if post != nil {
		t.Errorf("got %v, want nil for a missing post", post)
	}
}

func TestFollowersUnwrapsConnection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, "followers", map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"follower":   map[string]interface{}{"__typename": "Account", "address": "0xaaa"},
					"followedOn": "2026-01-01T00:00:00Z",
				},
			},
			"pageInfo": map[string]interface{}{},
		})
	})

	env, err := client.Followers(context.Background(), "0xabc", PageRequest{})
	if err != nil {
		t.Fatalf("Followers() error: %v", err)
	}
	if len(env.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(env.Items))
	}
	if env.Items[0]["address"] != "0xaaa" {
		t.Errorf("item not unwrapped: %v", env.Items[0])
	}
	if env.Items[0]["followedOn"] != "2026-01-01T00:00:00Z" {
		t.Error("followedOn timestamp lost during unwrap")
	}
	if env.PageInfo.HasNext {
		t.Error("HasNext = true for final page")
	}
}

func TestAccountByUsernameSplitsNamespace(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		if username, ok := req.Variables["username"].(map[string]interface{}); ok {
			if username["localName"] != "alice" {
				t.Errorf("localName = %v, want alice", username["localName"])
			}
			if username["namespace"] != "lens" {
				t.Errorf("namespace = %v, want lens", username["namespace"])
			}
			respondJSON(t, w, "account", map[string]interface{}{
				"__typename": "Account",
				// No address, so no follow-up stats request is made.
				"username": map[string]interface{}{"localName": "alice"},
			})
			return
		}
		t.Error("expected username variable for username lookup")
	})

	account, err := client.Account(context.Background(), AccountRef{Username: "lens/alice"})
	if err != nil {
		t.Fatalf("Account() error: %v", err)
	}
	if account == nil {
		t.Fatal("Account() returned nil for existing account")
	}
}

func TestAccountRequiresIdentifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for an empty ref")
	})

	if _, err := client.Account(context.Background(), AccountRef{}); err == nil {
		t.Error("expected error for empty AccountRef")
	}
}

func TestAccountAttachesStats(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		if strings.Contains(req.Query, "accountStats(") {
			respondJSON(t, w, "accountStats", map[string]interface{}{
				"graphFollowStats": map[string]interface{}{"followers": 12, "following": 3},
				"feedStats":        map[string]interface{}{"posts": 7},
			})
			return
		}
		respondJSON(t, w, "account", map[string]interface{}{
			"__typename": "Account",
			"address":    "0xabc",
		})
	})

	account, err := client.Account(context.Background(), AccountRef{Address: "0xabc"})
	if err != nil {
		t.Fatalf("Account() error: %v", err)
	}
	if calls != 2 {
		t.Errorf("got %d upstream calls, want 2 (account + stats)", calls)
	}
	if _, ok := account["stats"].(map[string]interface{}); !ok {
		t.Errorf("stats not attached to account: %v", account)
	}
}

func TestUpstreamRequestsRecorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Errorf("shutdown failed: %v", err)
		}
	})
	metrics, err := instrumentation.NewMetrics(provider.Meter("test"), false)
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}

	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, "accounts", map[string]interface{}{
			"items": []map[string]interface{}{},
		})
	}))
	t.Cleanup(okSrv.Close)
	badSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(badSrv.Close)

	okClient, err := NewClient(&ClientConfig{APIURL: okSrv.URL, Metrics: metrics})
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	badClient, err := NewClient(&ClientConfig{APIURL: badSrv.URL, Metrics: metrics})
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	if _, err := okClient.SearchAccounts(context.Background(), "alice", PageRequest{Size: PageSizeTen}); err != nil {
		t.Fatalf("SearchAccounts() error: %v", err)
	}
	if _, err := badClient.SearchAccounts(context.Background(), "alice", PageRequest{Size: PageSizeTen}); err == nil {
		t.Fatal("expected error from failing endpoint")
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	var requests *metricdata.Metrics
	for _, scope := range rm.ScopeMetrics {
		for i := range scope.Metrics {
			if scope.Metrics[i].Name == "lens_api_requests_total" {
				requests = &scope.Metrics[i]
			}
		}
	}
	if requests == nil {
		t.Fatal("lens_api_requests_total not recorded")
	}
	sum, ok := requests.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("unexpected data type %T", requests.Data)
	}

	byStatus := map[string]int64{}
	for _, dp := range sum.DataPoints {
		if op, ok := dp.Attributes.Value(attribute.Key("operation")); !ok || op.AsString() != "account search" {
			t.Errorf("unexpected operation attribute on %v", dp.Attributes)
		}
		status, _ := dp.Attributes.Value(attribute.Key("status"))
		byStatus[status.AsString()] += dp.Value
	}
	if byStatus[instrumentation.StatusSuccess] != 1 || byStatus[instrumentation.StatusError] != 1 {
		t.Errorf("got status counts %v, want one success and one error", byStatus)
	}
}
