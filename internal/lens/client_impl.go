package lens

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
)

// clientImpl implements Client against the Lens GraphQL endpoint.
type clientImpl struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	logger     *slog.Logger
	metrics    *instrumentation.Metrics
}

// NewClient creates a new Lens API client.
func NewClient(config *ClientConfig) (Client, error) {
	if config == nil {
		config = &ClientConfig{}
	}

	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if !strings.HasPrefix(apiURL, "http://") && !strings.HasPrefix(apiURL, "https://") {
		return nil, fmt.Errorf("invalid Lens API URL %q: missing http(s) scheme", apiURL)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &clientImpl{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     config.APIKey,
		logger:     logger,
		metrics:    config.Metrics,
	}, nil
}

// graphQLRequest is the JSON body of a GraphQL POST.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// graphQLError is one entry of a GraphQL error response.
type graphQLError struct {
	Message string `json:"message"`
}

// graphQLResponse is the JSON body of a GraphQL reply. Data is kept raw so
// each call can decode only its own root field.
type graphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []graphQLError             `json:"errors"`
}

// paginatedResult mirrors the API's paginated container shape.
type paginatedResult struct {
	Items    []map[string]interface{} `json:"items"`
	PageInfo struct {
		Prev *string `json:"prev"`
		Next *string `json:"next"`
	} `json:"pageInfo"`
}

// execute posts one GraphQL document and returns the raw data fields.
// Each call is traced as a client span and recorded in the upstream
// request metrics, labelled by operation, status, and page-size tier.
func (c *clientImpl) execute(ctx context.Context, operation, query string, vars map[string]interface{}) (map[string]json.RawMessage, error) {
	pageSize, _ := vars["pageSize"].(string)

	attrs := instrumentation.NewSpanAttributeBuilder().
		WithPageSize(pageSize).
		Build()
	ctx, span := instrumentation.StartUpstreamSpan(ctx, operation, attrs...)
	defer span.End()

	start := time.Now()
	data, err := c.post(ctx, operation, query, vars)
	duration := time.Since(start)

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, err)
	} else {
		instrumentation.SetSpanSuccess(span)
	}
	c.metrics.RecordUpstreamRequest(ctx, operation, pageSize, status, duration)

	return data, err
}

// post performs the HTTP round trip and decodes the GraphQL reply.
func (c *clientImpl) post(ctx context.Context, operation, query string, vars map[string]interface{}) (map[string]json.RawMessage, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	c.logger.Debug("lens API request completed",
		"operation", operation,
		"status_code", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d: %s", operation, resp.StatusCode, summarizeBody(respBody))
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", operation, err)
	}

	if len(decoded.Errors) > 0 {
		msgs := make([]string, 0, len(decoded.Errors))
		for _, e := range decoded.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("%s: %s", operation, strings.Join(msgs, "; "))
	}

	return decoded.Data, nil
}

// summarizeBody trims an error body for inclusion in an error message.
func summarizeBody(body []byte) string {
	const maxLen = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}

// fetchEnvelope executes a query whose root field is a paginated result and
// converts it into an Envelope.
func (c *clientImpl) fetchEnvelope(ctx context.Context, operation, root, query string, vars map[string]interface{}) (*Envelope, error) {
	data, err := c.execute(ctx, operation, query, vars)
	if err != nil {
		return nil, err
	}

	raw, ok := data[root]
	if !ok || string(raw) == "null" {
		// An absent root with no GraphQL error means an empty result.
		return &Envelope{Items: []map[string]interface{}{}}, nil
	}

	var page paginatedResult
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", operation, err)
	}

	env := &Envelope{Items: page.Items}
	if env.Items == nil {
		env.Items = []map[string]interface{}{}
	}
	if page.PageInfo.Next != nil && *page.PageInfo.Next != "" {
		env.PageInfo.HasNext = true
		env.PageInfo.NextCursor = *page.PageInfo.Next
	}
	return env, nil
}

// fetchObject executes a query whose root field is a single object.
// Returns nil without error when the object does not exist.
func (c *clientImpl) fetchObject(ctx context.Context, operation, root, query string, vars map[string]interface{}) (map[string]interface{}, error) {
	data, err := c.execute(ctx, operation, query, vars)
	if err != nil {
		return nil, err
	}

	raw, ok := data[root]
	if !ok || string(raw) == "null" {
		return nil, nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", operation, err)
	}
	return obj, nil
}

// pageVars merges pagination parameters into a variables map.
func pageVars(vars map[string]interface{}, page PageRequest) map[string]interface{} {
	if vars == nil {
		vars = make(map[string]interface{})
	}
	size := page.Size
	if size == "" {
		size = PageSizeTen
	}
	vars["pageSize"] = string(size)
	if page.Cursor != "" {
		vars["cursor"] = page.Cursor
	}
	return vars
}

// SearchAccounts implements SearchService.
func (c *clientImpl) SearchAccounts(ctx context.Context, query string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"query": query}, page)
	return c.fetchEnvelope(ctx, "account search", "accounts", searchAccountsQuery, vars)
}

// SearchPosts implements SearchService.
func (c *clientImpl) SearchPosts(ctx context.Context, query string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"query": query}, page)
	return c.fetchEnvelope(ctx, "post search", "posts", searchPostsQuery, vars)
}

// SearchGroups implements SearchService.
func (c *clientImpl) SearchGroups(ctx context.Context, query string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"query": query}, page)
	return c.fetchEnvelope(ctx, "group search", "groups", searchGroupsQuery, vars)
}

// SearchApps implements SearchService.
func (c *clientImpl) SearchApps(ctx context.Context, query string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"query": query}, page)
	return c.fetchEnvelope(ctx, "app search", "apps", searchAppsQuery, vars)
}

// Account implements ProfileService. When the account exists and has an
// address, its aggregate stats are fetched in a second call and attached
// under the "stats" key; a stats failure does not fail the lookup.
func (c *clientImpl) Account(ctx context.Context, ref AccountRef) (map[string]interface{}, error) {
	vars := make(map[string]interface{})
	switch {
	case ref.Address != "":
		vars["address"] = ref.Address
	case ref.Username != "":
		local := ref.Username
		namespace := ""
		if idx := strings.Index(local, "/"); idx >= 0 {
			namespace = local[:idx]
			local = local[idx+1:]
		}
		username := map[string]interface{}{"localName": local}
		if namespace != "" {
			username["namespace"] = namespace
		}
		vars["username"] = username
	default:
		return nil, fmt.Errorf("account lookup requires an address or username")
	}

	account, err := c.fetchObject(ctx, "account lookup", "account", accountQuery, vars)
	if err != nil || account == nil {
		return account, err
	}

	if address, _ := account["address"].(string); address != "" {
		stats, statsErr := c.fetchObject(ctx, "account stats", "accountStats", accountStatsQuery,
			map[string]interface{}{"address": address})
		if statsErr != nil {
			c.logger.Debug("account stats fetch failed", "address", address, "error", statsErr)
		} else if stats != nil {
			account["stats"] = stats
		}
	}
	return account, nil
}

// Followers implements ProfileService. The API wraps each follower in a
// connection record; the wrapper is collapsed so items are plain accounts.
func (c *clientImpl) Followers(ctx context.Context, address string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"address": address}, page)
	env, err := c.fetchEnvelope(ctx, "followers lookup", "followers", followersQuery, vars)
	if err != nil {
		return nil, err
	}
	return unwrapConnection(env, "follower"), nil
}

// Following implements ProfileService.
func (c *clientImpl) Following(ctx context.Context, address string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"address": address}, page)
	env, err := c.fetchEnvelope(ctx, "following lookup", "following", followingQuery, vars)
	if err != nil {
		return nil, err
	}
	return unwrapConnection(env, "following"), nil
}

// unwrapConnection collapses connection wrappers like {follower: {...},
// followedOn: ...} into the inner entity, preserving the timestamp.
func unwrapConnection(env *Envelope, key string) *Envelope {
	items := make([]map[string]interface{}, 0, len(env.Items))
	for _, item := range env.Items {
		inner, ok := item[key].(map[string]interface{})
		if !ok {
			items = append(items, item)
			continue
		}
		if followedOn, ok := item["followedOn"]; ok {
			inner["followedOn"] = followedOn
		}
		items = append(items, inner)
	}
	return &Envelope{Items: items, PageInfo: env.PageInfo}
}

// Post implements ContentService.
func (c *clientImpl) Post(ctx context.Context, id string) (map[string]interface{}, error) {
	return c.fetchObject(ctx, "post lookup", "post", postQuery, map[string]interface{}{"id": id})
}

// Reactions implements ContentService.
func (c *clientImpl) Reactions(ctx context.Context, postID string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"id": postID}, page)
	return c.fetchEnvelope(ctx, "reactions lookup", "postReactions", postReactionsQuery, vars)
}

// References implements ContentService.
func (c *clientImpl) References(ctx context.Context, postID string, ref ReferenceType, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{
		"id":    postID,
		"types": []string{string(ref)},
	}, page)
	return c.fetchEnvelope(ctx, "references lookup", "postReferences", postReferencesQuery, vars)
}

// Timeline implements EcosystemService.
func (c *clientImpl) Timeline(ctx context.Context, address string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"address": address}, page)
	return c.fetchEnvelope(ctx, "timeline lookup", "timeline", timelineQuery, vars)
}

// Apps implements EcosystemService.
func (c *clientImpl) Apps(ctx context.Context, query string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{}, page)
	if query != "" {
		vars["query"] = query
	}
	return c.fetchEnvelope(ctx, "apps lookup", "apps", searchAppsQuery, vars)
}

// Groups implements EcosystemService.
func (c *clientImpl) Groups(ctx context.Context, member string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{}, page)
	if member != "" {
		vars["member"] = member
	}
	return c.fetchEnvelope(ctx, "groups lookup", "groups", groupsQuery, vars)
}

// Usernames implements EcosystemService.
func (c *clientImpl) Usernames(ctx context.Context, owner string, page PageRequest) (*Envelope, error) {
	vars := pageVars(map[string]interface{}{"owner": owner}, page)
	return c.fetchEnvelope(ctx, "usernames lookup", "usernames", usernamesQuery, vars)
}
