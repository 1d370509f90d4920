// Package resources exposes Lens entities as MCP resources. Resources
// return verbatim upstream JSON; the response-shaping pipeline applies to
// tools only.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/lens"
	"github.com/giantswarm/mcp-lens/internal/server"
)

const (
	accountURIPrefix = "lens://account/"
	postURIPrefix    = "lens://post/"

	jsonMIMEType = "application/json"
)

// RegisterResources registers the account and post resource templates with
// the MCP server.
func RegisterResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	accountTemplate := mcp.NewResourceTemplate(
		accountURIPrefix+"{address}",
		"Lens Account",
		mcp.WithTemplateDescription("Raw account document for an EVM address"),
		mcp.WithTemplateMIMEType(jsonMIMEType),
	)
	s.AddResourceTemplate(accountTemplate, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return readAccount(ctx, request, sc)
	})

	postTemplate := mcp.NewResourceTemplate(
		postURIPrefix+"{id}",
		"Lens Post",
		mcp.WithTemplateDescription("Raw post document for a post id"),
		mcp.WithTemplateMIMEType(jsonMIMEType),
	)
	s.AddResourceTemplate(postTemplate, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return readPost(ctx, request, sc)
	})

	return nil
}

func readAccount(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	address, err := identifierFromURI(request.Params.URI, accountURIPrefix)
	if err != nil {
		return nil, err
	}

	account, err := sc.LensClient().Account(ctx, lens.AccountRef{Address: address})
	if err != nil {
		sc.Metrics().IncrementUpstreamErrors()
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s not found", address)
	}

	return contents(request.Params.URI, account)
}

func readPost(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	id, err := identifierFromURI(request.Params.URI, postURIPrefix)
	if err != nil {
		return nil, err
	}

	post, err := sc.LensClient().Post(ctx, id)
	if err != nil {
		sc.Metrics().IncrementUpstreamErrors()
		return nil, fmt.Errorf("post lookup failed: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("post %s not found", id)
	}

	return contents(request.Params.URI, post)
}

func identifierFromURI(uri, prefix string) (string, error) {
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("unsupported resource URI %q (valid: %s{address}, %s{id})", uri, accountURIPrefix, postURIPrefix)
	}
	identifier := strings.TrimSpace(strings.TrimPrefix(uri, prefix))
	if identifier == "" {
		return "", fmt.Errorf("resource URI %q is missing an identifier", uri)
	}
	return identifier, nil
}

func contents(uri string, entity map[string]interface{}) ([]mcp.ResourceContents, error) {
	raw, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resource: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(raw),
		},
	}, nil
}
