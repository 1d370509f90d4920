package lens

// PageSize is a page-size tier accepted by the Lens API. The API does not
// take arbitrary page sizes; list requests must use one of these values.
type PageSize string

const (
	// PageSizeTen requests up to 10 items per page.
	PageSizeTen PageSize = "TEN"

	// PageSizeFifty requests up to 50 items per page.
	PageSizeFifty PageSize = "FIFTY"
)

// MaxPageItems is the largest number of items a single page can carry.
// Requested limits above this are clamped before tier selection.
const MaxPageItems = 50

// PageSizeForLimit returns the smallest page-size tier that can satisfy the
// requested item count. Non-positive limits get the smallest tier; limits
// above MaxPageItems are treated as MaxPageItems.
func PageSizeForLimit(limit int) PageSize {
	if limit > 0 && limit > 10 {
		return PageSizeFifty
	}
	return PageSizeTen
}

// ClampLimit bounds a requested limit to [1, MaxPageItems], treating
// non-positive values as the given default.
func ClampLimit(limit, defaultLimit int) int {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxPageItems {
		limit = MaxPageItems
	}
	return limit
}

// PageRequest carries pagination parameters for a list call.
type PageRequest struct {
	// Size is the page-size tier to request.
	Size PageSize

	// Cursor is the opaque pagination cursor from a previous response.
	// Empty requests the first page.
	Cursor string
}

// PageInfo describes the pagination state of an Envelope.
type PageInfo struct {
	// HasNext is true when more items are available after this page.
	HasNext bool `json:"hasNext"`

	// NextCursor is the opaque cursor for the next page, empty when
	// HasNext is false.
	NextCursor string `json:"nextCursor,omitempty"`
}

// Envelope is the paginated result container returned by every list call.
// Items are kept as generic maps: the API returns large, schema-versioned
// field bags and the output pipeline decides which fields survive.
// An Envelope is never mutated after it is returned.
type Envelope struct {
	Items    []map[string]interface{} `json:"items"`
	PageInfo PageInfo                 `json:"pageInfo"`
}

// AccountRef identifies an account by address or username. Exactly one
// field should be set; when both are set the address wins.
type AccountRef struct {
	// Address is the account's EVM address.
	Address string

	// Username is the account's full username (e.g. "lens/alice").
	Username string
}

// Identifier returns whichever identifier is set, preferring the address.
func (r AccountRef) Identifier() string {
	if r.Address != "" {
		return r.Address
	}
	return r.Username
}

// ReferenceType selects which kind of post references to fetch.
type ReferenceType string

const (
	// ReferenceComments selects comments on a post.
	ReferenceComments ReferenceType = "COMMENT_ON"

	// ReferenceQuotes selects quotes of a post.
	ReferenceQuotes ReferenceType = "QUOTE_OF"

	// ReferenceReposts selects reposts (mirrors) of a post.
	ReferenceReposts ReferenceType = "REPOST_OF"
)

// Entity typename discriminants as returned by the API's __typename field.
const (
	TypenameAccount  = "Account"
	TypenamePost     = "Post"
	TypenameRepost   = "Repost"
	TypenameApp      = "App"
	TypenameGroup    = "Group"
	TypenameUsername = "Username"
	TypenameReaction = "PostReaction"
)
