package lens

import (
	"context"
	"log/slog"
	"time"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
)

// DefaultAPIURL is the public Lens API GraphQL endpoint.
const DefaultAPIURL = "https://api.lens.xyz/graphql"

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 30 * time.Second

// Client defines the interface for Lens API operations.
// It is composed of per-concern sub-interfaces so tool packages can depend
// on the narrowest surface they need.
type Client interface {
	// Search operations
	SearchService

	// Profile operations
	ProfileService

	// Content operations
	ContentService

	// Ecosystem operations
	EcosystemService
}

// SearchService handles full-text search across entity kinds.
type SearchService interface {
	// SearchAccounts searches accounts by local username or display name.
	SearchAccounts(ctx context.Context, query string, page PageRequest) (*Envelope, error)

	// SearchPosts searches post content.
	SearchPosts(ctx context.Context, query string, page PageRequest) (*Envelope, error)

	// SearchGroups searches groups by name or description.
	SearchGroups(ctx context.Context, query string, page PageRequest) (*Envelope, error)

	// SearchApps searches apps by name.
	SearchApps(ctx context.Context, query string, page PageRequest) (*Envelope, error)
}

// ProfileService handles single-account lookups and the follow graph.
type ProfileService interface {
	// Account fetches one account by address or username.
	// Returns nil without error when the account does not exist.
	Account(ctx context.Context, ref AccountRef) (map[string]interface{}, error)

	// Followers lists accounts following the given address.
	Followers(ctx context.Context, address string, page PageRequest) (*Envelope, error)

	// Following lists accounts the given address follows.
	Following(ctx context.Context, address string, page PageRequest) (*Envelope, error)
}

// ContentService handles posts and their reactions and references.
type ContentService interface {
	// Post fetches one post by id.
	// Returns nil without error when the post does not exist.
	Post(ctx context.Context, id string) (map[string]interface{}, error)

	// Reactions lists reactions on a post.
	Reactions(ctx context.Context, postID string, page PageRequest) (*Envelope, error)

	// References lists posts referencing the given post (comments,
	// quotes, or reposts depending on the reference type).
	References(ctx context.Context, postID string, ref ReferenceType, page PageRequest) (*Envelope, error)
}

// EcosystemService handles apps, groups, usernames, and timelines.
type EcosystemService interface {
	// Timeline lists timeline entries for an account.
	Timeline(ctx context.Context, address string, page PageRequest) (*Envelope, error)

	// Apps lists apps, optionally filtered by a search query.
	Apps(ctx context.Context, query string, page PageRequest) (*Envelope, error)

	// Groups lists groups, optionally filtered to a member address.
	Groups(ctx context.Context, member string, page PageRequest) (*Envelope, error)

	// Usernames lists username records owned by an address.
	Usernames(ctx context.Context, owner string, page PageRequest) (*Envelope, error)
}

// ClientConfig holds the configuration for creating a Lens API client.
type ClientConfig struct {
	// APIURL is the GraphQL endpoint. Defaults to DefaultAPIURL.
	APIURL string

	// APIKey is an optional API key sent as the x-api-key header.
	// The public endpoint works without one.
	APIKey string

	// Timeout bounds each upstream request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Logger receives request-level debug logs. Defaults to slog.Default.
	Logger *slog.Logger

	// Metrics receives upstream request counters and durations. A nil
	// recorder records nothing.
	Metrics *instrumentation.Metrics
}
