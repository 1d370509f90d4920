// Package testdata provides mock implementations of the Lens API client
// for testing tool handlers. The package lives in a testdata directory so
// the Go toolchain excludes it from regular builds, but it is explicitly
// importable by test files.
package testdata

import (
	"context"
	"errors"

	"github.com/giantswarm/mcp-lens/internal/lens"
)

// Compile-time check that the mock satisfies the full client interface.
var _ lens.Client = (*MockLensClient)(nil)

// ErrNotConfigured is returned by mock methods without a configured
// function field.
var ErrNotConfigured = errors.New("mock method not configured")

// MockLensClient implements lens.Client with configurable function fields.
// Methods without a configured function return ErrNotConfigured, so tests
// fail loudly when a handler calls an unexpected upstream operation.
type MockLensClient struct {
	SearchAccountsFunc func(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error)
	SearchPostsFunc    func(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error)
	SearchGroupsFunc   func(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error)
	SearchAppsFunc     func(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error)

	AccountFunc   func(ctx context.Context, ref lens.AccountRef) (map[string]interface{}, error)
	FollowersFunc func(ctx context.Context, address string, page lens.PageRequest) (*lens.Envelope, error)
	FollowingFunc func(ctx context.Context, address string, page lens.PageRequest) (*lens.Envelope, error)

	PostFunc       func(ctx context.Context, id string) (map[string]interface{}, error)
	ReactionsFunc  func(ctx context.Context, postID string, page lens.PageRequest) (*lens.Envelope, error)
	ReferencesFunc func(ctx context.Context, postID string, ref lens.ReferenceType, page lens.PageRequest) (*lens.Envelope, error)

	TimelineFunc  func(ctx context.Context, address string, page lens.PageRequest) (*lens.Envelope, error)
	AppsFunc      func(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error)
	GroupsFunc    func(ctx context.Context, member string, page lens.PageRequest) (*lens.Envelope, error)
	UsernamesFunc func(ctx context.Context, owner string, page lens.PageRequest) (*lens.Envelope, error)
}

func (m *MockLensClient) SearchAccounts(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.SearchAccountsFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.SearchAccountsFunc(ctx, query, page)
}

func (m *MockLensClient) SearchPosts(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.SearchPostsFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.SearchPostsFunc(ctx, query, page)
}

func (m *MockLensClient) SearchGroups(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.SearchGroupsFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.SearchGroupsFunc(ctx, query, page)
}

func (m *MockLensClient) SearchApps(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.SearchAppsFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.SearchAppsFunc(ctx, query, page)
}

func (m *MockLensClient) Account(ctx context.Context, ref lens.AccountRef) (map[string]interface{}, error) {
	if m.AccountFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.AccountFunc(ctx, ref)
}

func (m *MockLensClient) Followers(ctx context.Context, address string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.FollowersFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.FollowersFunc(ctx, address, page)
}

func (m *MockLensClient) Following(ctx context.Context, address string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.FollowingFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.FollowingFunc(ctx, address, page)
}

func (m *MockLensClient) Post(ctx context.Context, id string) (map[string]interface{}, error) {
	if m.PostFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.PostFunc(ctx, id)
}

func (m *MockLensClient) Reactions(ctx context.Context, postID string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.ReactionsFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.ReactionsFunc(ctx, postID, page)
}

func (m *MockLensClient) References(ctx context.Context, postID string, ref lens.ReferenceType, page lens.PageRequest) (*lens.Envelope, error) {
	if m.ReferencesFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.ReferencesFunc(ctx, postID, ref, page)
}

func (m *MockLensClient) Timeline(ctx context.Context, address string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.TimelineFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.TimelineFunc(ctx, address, page)
}

func (m *MockLensClient) Apps(ctx context.Context, query string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.AppsFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.AppsFunc(ctx, query, page)
}

func (m *MockLensClient) Groups(ctx context.Context, member string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.GroupsFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.GroupsFunc(ctx, member, page)
}

func (m *MockLensClient) Usernames(ctx context.Context, owner string, page lens.PageRequest) (*lens.Envelope, error) {
	if m.UsernamesFunc == nil {
		return nil, ErrNotConfigured
	}
	return m.UsernamesFunc(ctx, owner, page)
}

// SampleAccount returns a realistic upstream account document for tests.
func SampleAccount(address, handle string) map[string]interface{} {
	return map[string]interface{}{
		"__typename": "Account",
		"address":    address,
		"username": map[string]interface{}{
			"value":     "lens/" + handle,
			"localName": handle,
		},
		"metadata": map[string]interface{}{
			"name":    handle,
			"bio":     "bio of " + handle,
			"picture": "ipfs://picture-" + handle,
		},
	}
}

// SamplePost returns a realistic upstream post document for tests.
func SamplePost(id, content string) map[string]interface{} {
	return map[string]interface{}{
		"__typename": "Post",
		"id":         id,
		"author":     SampleAccount("0x1234567890abcdef1234567890abcdef12345678", "author"),
		"metadata": map[string]interface{}{
			"content": content,
		},
		"stats": map[string]interface{}{
			"reactions": float64(2),
			"comments":  float64(1),
		},
		"timestamp": "2025-06-01T12:00:00Z",
	}
}

// SampleEnvelope wraps items in an Envelope with optional pagination.
func SampleEnvelope(items []map[string]interface{}, nextCursor string) *lens.Envelope {
	return &lens.Envelope{
		Items: items,
		PageInfo: lens.PageInfo{
			HasNext:    nextCursor != "",
			NextCursor: nextCursor,
		},
	}
}
