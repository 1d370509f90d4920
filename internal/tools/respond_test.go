package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
	"github.com/giantswarm/mcp-lens/internal/tools/testdata"
)

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestListResultConcise(t *testing.T) {
	sc := newTestContext(t)

	items := []map[string]interface{}{
		testdata.SampleAccount("0x1111111111111111111111111111111111111111", "alice"),
	}
	result := ListResult(sc, "account", items, true, "cur", output.ShowConcise)

	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "Found 1 account")
	assert.Contains(t, text, "more available")
	assert.Contains(t, text, "alice")
	assert.NotContains(t, text, "{")
}

func TestListResultDetailedCarriesData(t *testing.T) {
	sc := newTestContext(t)

	items := []map[string]interface{}{
		testdata.SampleAccount("0x1111111111111111111111111111111111111111", "alice"),
	}
	result := ListResult(sc, "account", items, false, "", output.ShowDetailed)

	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "Found 1 account")
	assert.Contains(t, text, "0x1111111111111111111111111111111111111111")
}

func TestEntityResult(t *testing.T) {
	sc := newTestContext(t)

	entity := testdata.SamplePost("42-1", "gm")
	result := EntityResult(sc, "post", "42-1", entity, output.ShowConcise)

	require.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Post 42-1 found")
}

func TestRefusalIncrementsCounter(t *testing.T) {
	sc := newTestContext(t)
	cfg := sc.OutputConfig()
	cfg.TokenBudget = 10

	big := make([]map[string]interface{}, 50)
	for i := range big {
		big[i] = testdata.SamplePost("42-1", "some longer post content for volume")
	}
	result := ListResult(sc, "post", big, false, "", output.ShowRaw)

	require.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "token budget")

	_, _, refused := sc.Metrics().Snapshot()
	assert.Equal(t, int64(1), refused)
}

func TestUpstreamError(t *testing.T) {
	sc := newTestContext(t)

	result := UpstreamError(sc, "search", errors.New("boom"))
	require.True(t, result.IsError)
	assert.Equal(t, "search failed: boom", textOf(t, result))

	upstreamErrors, _, _ := sc.Metrics().Snapshot()
	assert.Equal(t, int64(1), upstreamErrors)
}

func TestResponseTokens(t *testing.T) {
	assert.Zero(t, ResponseTokens(nil))
	assert.Zero(t, ResponseTokens(&mcp.CallToolResult{}))

	result := mcp.NewToolResultText("12345678")
	assert.Equal(t, 2, ResponseTokens(result))
}

func TestWrapWithObservability(t *testing.T) {
	sc := newTestContext(t)

	handlerCalled := false
	handler := func(ctx context.Context, request mcp.CallToolRequest, innerSC *server.ServerContext) (*mcp.CallToolResult, error) {
		handlerCalled = true
		assert.Same(t, sc, innerSC)
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := WrapWithObservability("lens_search", handler, sc)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"show": "concise"}

	result, err := wrapped(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, "ok", textOf(t, result))
}

func TestWrapWithObservabilityPropagatesError(t *testing.T) {
	sc := newTestContext(t)

	wantErr := errors.New("handler blew up")
	handler := func(ctx context.Context, request mcp.CallToolRequest, innerSC *server.ServerContext) (*mcp.CallToolResult, error) {
		return nil, wantErr
	}

	wrapped := WrapWithObservability("lens_search", handler, sc)

	_, err := wrapped(context.Background(), mcp.CallToolRequest{})
	assert.ErrorIs(t, err, wantErr)
}

func TestIdentifierFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{
			name: "address preferred over id",
			args: map[string]interface{}{"address": "0xabc", "id": "42"},
			want: "0xabc",
		},
		{
			name: "username",
			args: map[string]interface{}{"username": "lens/alice"},
			want: "lens/alice",
		},
		{
			name: "owner",
			args: map[string]interface{}{"owner": "0xdef"},
			want: "0xdef",
		},
		{
			name: "whitespace is not an identifier",
			args: map[string]interface{}{"address": "   ", "id": "42"},
			want: "42",
		},
		{
			name: "no identifier arguments",
			args: map[string]interface{}{"query": "alice"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identifierFromArgs(tt.args))
		})
	}
}
