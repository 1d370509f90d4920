package output

import (
	"reflect"
	"testing"
)

func TestReducePost(t *testing.T) {
	post := map[string]interface{}{
		"__typename": "Post",
		"id":         "p1",
		"commentOn":  map[string]interface{}{"id": "p0"},
		"metadata":   map[string]interface{}{"content": "hi"},
		"stats":      map[string]interface{}{"reactions": float64(3)},
	}

	reduced := Reduce(post)

	expected := map[string]interface{}{
		"id":        "p1",
		"content":   "hi",
		"stats":     map[string]interface{}{"reactions": float64(3)},
		"commentOn": "p0",
		"type":      "comment",
	}
	if !reflect.DeepEqual(reduced, expected) {
		t.Errorf("Reduce() = %#v, expected %#v", reduced, expected)
	}
}

func TestPostTypeDerivation(t *testing.T) {
	tests := []struct {
		name     string
		post     map[string]interface{}
		expected string
	}{
		{
			name: "comment wins over quote",
			post: map[string]interface{}{
				"commentOn": map[string]interface{}{"id": "p0"},
				"quoteOf":   map[string]interface{}{"id": "p2"},
			},
			expected: "comment",
		},
		{
			name: "quote",
			post: map[string]interface{}{
				"quoteOf": map[string]interface{}{"id": "p2"},
			},
			expected: "quote",
		},
		{
			name: "repost typename is a mirror",
			post: map[string]interface{}{
				"__typename": "Repost",
				"id":         "p1",
			},
			expected: "mirror",
		},
		{
			name: "distinct root is a mirror",
			post: map[string]interface{}{
				"id":   "p1",
				"root": map[string]interface{}{"id": "p0"},
			},
			expected: "mirror",
		},
		{
			name: "root equal to id is a plain post",
			post: map[string]interface{}{
				"id":   "p1",
				"root": map[string]interface{}{"id": "p1"},
			},
			expected: "post",
		},
		{
			name:     "no references",
			post:     map[string]interface{}{"id": "p1"},
			expected: "post",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := postType(tc.post); got != tc.expected {
				t.Errorf("postType() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestReducePostKeepsDistinctRoot(t *testing.T) {
	post := map[string]interface{}{
		"__typename": "Post",
		"id":         "p1",
		"root":       map[string]interface{}{"id": "p0"},
	}

	reduced := Reduce(post)

	if reduced["root"] != "p0" {
		t.Errorf("expected root collapsed to %q, got %v", "p0", reduced["root"])
	}
	if reduced["type"] != "mirror" {
		t.Errorf("expected type mirror, got %v", reduced["type"])
	}
}

func TestReducePostDropsZeroStats(t *testing.T) {
	post := map[string]interface{}{
		"__typename": "Post",
		"id":         "p1",
		"stats": map[string]interface{}{
			"reactions": float64(0),
			"comments":  float64(2),
		},
	}

	reduced := Reduce(post)

	stats, ok := reduced["stats"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected stats map, got %v", reduced["stats"])
	}
	if _, present := stats["reactions"]; present {
		t.Errorf("expected zero reactions to be dropped, got %v", stats)
	}
	if stats["comments"] != float64(2) {
		t.Errorf("expected comments 2, got %v", stats["comments"])
	}
}

func TestReduceAccount(t *testing.T) {
	account := map[string]interface{}{
		"__typename": "Account",
		"address":    "0xabc",
		"username":   map[string]interface{}{"value": "lens/alice", "localName": "alice"},
		"metadata": map[string]interface{}{
			"name":    "Alice",
			"bio":     "builder",
			"picture": "ipfs://pic",
		},
		"stats": map[string]interface{}{
			"graphFollowStats": map[string]interface{}{
				"followers": float64(12),
				"following": float64(7),
			},
			"feedStats": map[string]interface{}{"posts": float64(3)},
		},
	}

	reduced := Reduce(account)

	if reduced["address"] != "0xabc" {
		t.Errorf("expected address preserved, got %v", reduced["address"])
	}
	if reduced["username"] != "lens/alice" {
		t.Errorf("expected username collapsed to value, got %v", reduced["username"])
	}
	if reduced["name"] != "Alice" || reduced["bio"] != "builder" {
		t.Errorf("expected metadata name/bio lifted, got %v", reduced)
	}
	if _, present := reduced["picture"]; present {
		t.Errorf("expected picture dropped, got %v", reduced)
	}
	stats, ok := reduced["stats"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected stats map, got %v", reduced["stats"])
	}
	if stats["followers"] != float64(12) || stats["following"] != float64(7) || stats["posts"] != float64(3) {
		t.Errorf("unexpected stats: %v", stats)
	}
}

func TestReducePostAuthor(t *testing.T) {
	post := map[string]interface{}{
		"__typename": "Post",
		"id":         "p1",
		"author": map[string]interface{}{
			"address":  "0xabc",
			"username": map[string]interface{}{"value": "lens/alice"},
			"metadata": map[string]interface{}{"picture": "ipfs://pic"},
		},
	}

	reduced := Reduce(post)

	author, ok := reduced["author"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected author map, got %v", reduced["author"])
	}
	expected := map[string]interface{}{"address": "0xabc", "username": "lens/alice"}
	if !reflect.DeepEqual(author, expected) {
		t.Errorf("author = %#v, expected %#v", author, expected)
	}
}

func TestReduceIsIdempotent(t *testing.T) {
	post := map[string]interface{}{
		"__typename": "Post",
		"id":         "p1",
		"metadata":   map[string]interface{}{"content": "hi"},
	}

	once := Reduce(post)
	twice := Reduce(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second reduction changed the result: %#v vs %#v", once, twice)
	}
}

func TestReduceUnknownTypenamePassesThrough(t *testing.T) {
	entity := map[string]interface{}{"__typename": "Mystery", "field": "value"}
	if got := Reduce(entity); !reflect.DeepEqual(got, entity) {
		t.Errorf("expected unknown entity unchanged, got %#v", got)
	}
}

func TestReduceUsername(t *testing.T) {
	username := map[string]interface{}{
		"__typename": "Username",
		"value":      "lens/alice",
		"localName":  "alice",
		"namespace":  map[string]interface{}{"address": "0xns"},
		"ownedBy":    "0xabc",
		"linkedTo":   "0xabc",
	}

	reduced := Reduce(username)

	if reduced["value"] != "lens/alice" || reduced["localName"] != "alice" {
		t.Errorf("unexpected username reduction: %v", reduced)
	}
	if reduced["namespace"] != "0xns" {
		t.Errorf("expected namespace collapsed to address, got %v", reduced["namespace"])
	}
}

func TestReduceReaction(t *testing.T) {
	reaction := map[string]interface{}{
		"__typename": "PostReaction",
		"reaction":   "UPVOTE",
		"account": map[string]interface{}{
			"address":  "0xabc",
			"username": map[string]interface{}{"value": "lens/alice"},
		},
	}

	reduced := Reduce(reaction)

	if reduced["reaction"] != "UPVOTE" {
		t.Errorf("expected reaction preserved, got %v", reduced["reaction"])
	}
	if reduced["account"] != "lens/alice" {
		t.Errorf("expected account collapsed to username, got %v", reduced["account"])
	}
}
