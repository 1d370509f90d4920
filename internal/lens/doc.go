// Package lens provides the client for the Lens Protocol GraphQL API.
//
// The Lens API is the upstream data source for every MCP tool in this
// server: accounts, posts, reactions, references, apps, groups, usernames,
// and timelines. The package exposes a [Client] interface composed of
// per-concern sub-interfaces so tool packages only depend on the operations
// they actually call, with a single HTTP implementation behind it.
//
// All list operations return a paginated [Envelope]. The API only accepts a
// small set of discrete page sizes (see [PageSize]); requested limits are
// rounded up to the nearest supported tier with [PageSizeForLimit].
//
// The client is read-only. Calls are never retried; upstream errors are
// returned with the API's human-readable message so tool handlers can
// surface them directly.
package lens
