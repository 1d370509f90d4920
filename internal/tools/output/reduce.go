package output

// Reduce projects a full upstream entity onto its compact form based on the
// entity's __typename. Entities without a recognized __typename are returned
// unchanged, which makes reduction safe to apply twice: reduced projections
// never carry __typename, so a second pass falls through untouched.
func Reduce(entity map[string]interface{}) map[string]interface{} {
	if entity == nil {
		return nil
	}
	typename, _ := entity["__typename"].(string)
	switch typename {
	case "Account":
		return reduceAccount(entity)
	case "Post", "Repost":
		return reducePost(entity)
	case "App":
		return reduceApp(entity)
	case "Group":
		return reduceGroup(entity)
	case "Username":
		return reduceUsername(entity)
	case "PostReaction":
		return reduceReaction(entity)
	default:
		return entity
	}
}

// ReduceAll reduces every entity in a slice, preserving order.
func ReduceAll(entities []map[string]interface{}) []map[string]interface{} {
	if entities == nil {
		return nil
	}
	reduced := make([]map[string]interface{}, 0, len(entities))
	for _, entity := range entities {
		reduced = append(reduced, Reduce(entity))
	}
	return reduced
}

func reduceAccount(account map[string]interface{}) map[string]interface{} {
	reduced := map[string]interface{}{}
	setIfPresent(reduced, "address", account["address"])

	if username := nestedMap(account, "username"); username != nil {
		setIfPresent(reduced, "username", username["value"])
	} else {
		setIfPresent(reduced, "username", stringOrNil(account["username"]))
	}

	if metadata := nestedMap(account, "metadata"); metadata != nil {
		setIfPresent(reduced, "name", metadata["name"])
		setIfPresent(reduced, "bio", metadata["bio"])
	}

	if stats := accountStats(account); len(stats) > 0 {
		reduced["stats"] = stats
	}
	setIfPresent(reduced, "followedOn", account["followedOn"])
	return reduced
}

// accountStats flattens the separate stats document attached by the client.
// Counters live under graphFollowStats and feedStats in the upstream shape;
// flat keys are honored as a fallback.
func accountStats(account map[string]interface{}) map[string]interface{} {
	stats := nestedMap(account, "stats")
	if stats == nil {
		return nil
	}
	flat := map[string]interface{}{}
	if follow := nestedMap(stats, "graphFollowStats"); follow != nil {
		setIfPresent(flat, "followers", follow["followers"])
		setIfPresent(flat, "following", follow["following"])
	} else {
		setIfPresent(flat, "followers", stats["followers"])
		setIfPresent(flat, "following", stats["following"])
	}
	if feed := nestedMap(stats, "feedStats"); feed != nil {
		setIfPresent(flat, "posts", feed["posts"])
	} else {
		setIfPresent(flat, "posts", stats["posts"])
	}
	return flat
}

func reducePost(post map[string]interface{}) map[string]interface{} {
	reduced := map[string]interface{}{}
	setIfPresent(reduced, "id", post["id"])

	if author := reduceAuthor(post); len(author) > 0 {
		reduced["author"] = author
	}

	if metadata := nestedMap(post, "metadata"); metadata != nil {
		setIfPresent(reduced, "content", metadata["content"])
	}
	setIfPresent(reduced, "timestamp", post["timestamp"])

	if stats := postStats(post); len(stats) > 0 {
		reduced["stats"] = stats
	}

	reduced["type"] = postType(post)
	if parent := referencedPostID(post, "commentOn"); parent != "" {
		reduced["commentOn"] = parent
	}
	if quoted := referencedPostID(post, "quoteOf"); quoted != "" {
		reduced["quoteOf"] = quoted
	}
	if root := referencedPostID(post, "root"); root != "" {
		if id, _ := post["id"].(string); id != root {
			reduced["root"] = root
		}
	}
	return reduced
}

// reduceAuthor keeps the author's address and username value, dropping the
// rest of the nested account document.
func reduceAuthor(post map[string]interface{}) map[string]interface{} {
	author := nestedMap(post, "author")
	if author == nil {
		return nil
	}
	reduced := map[string]interface{}{}
	setIfPresent(reduced, "address", author["address"])
	if username := nestedMap(author, "username"); username != nil {
		setIfPresent(reduced, "username", username["value"])
	} else {
		setIfPresent(reduced, "username", stringOrNil(author["username"]))
	}
	return reduced
}

// postStats keeps the engagement counters, dropping zero and missing
// values.
func postStats(post map[string]interface{}) map[string]interface{} {
	stats := nestedMap(post, "stats")
	if stats == nil {
		return nil
	}
	flat := map[string]interface{}{}
	for _, key := range []string{"reactions", "comments", "reposts", "quotes"} {
		value := stats[key]
		if n, ok := value.(float64); ok && n == 0 {
			continue
		}
		setIfPresent(flat, key, value)
	}
	return flat
}

// postType derives a post's variant. Precedence: a comment beats a quote,
// a quote beats a mirror, and a post that republishes a distinct root (or
// carries the Repost typename) is a mirror.
func postType(post map[string]interface{}) string {
	if referencedPostID(post, "commentOn") != "" {
		return "comment"
	}
	if referencedPostID(post, "quoteOf") != "" {
		return "quote"
	}
	if typename, _ := post["__typename"].(string); typename == "Repost" {
		return "mirror"
	}
	if root := referencedPostID(post, "root"); root != "" {
		if id, _ := post["id"].(string); id != root {
			return "mirror"
		}
	}
	return "post"
}

func referencedPostID(post map[string]interface{}, field string) string {
	ref := nestedMap(post, field)
	if ref == nil {
		return ""
	}
	id, _ := ref["id"].(string)
	return id
}

func reduceApp(app map[string]interface{}) map[string]interface{} {
	reduced := map[string]interface{}{}
	setIfPresent(reduced, "address", app["address"])
	if metadata := nestedMap(app, "metadata"); metadata != nil {
		setIfPresent(reduced, "name", metadata["name"])
		setIfPresent(reduced, "description", metadata["description"])
		setIfPresent(reduced, "url", metadata["url"])
	}
	setIfPresent(reduced, "createdAt", app["createdAt"])
	return reduced
}

func reduceGroup(group map[string]interface{}) map[string]interface{} {
	reduced := map[string]interface{}{}
	setIfPresent(reduced, "address", group["address"])
	if metadata := nestedMap(group, "metadata"); metadata != nil {
		setIfPresent(reduced, "name", metadata["name"])
		setIfPresent(reduced, "description", metadata["description"])
	}
	setIfPresent(reduced, "timestamp", group["timestamp"])
	return reduced
}

func reduceUsername(username map[string]interface{}) map[string]interface{} {
	reduced := map[string]interface{}{}
	setIfPresent(reduced, "value", username["value"])
	setIfPresent(reduced, "localName", username["localName"])
	setIfPresent(reduced, "namespace", usernameNamespace(username))
	setIfPresent(reduced, "linkedTo", username["linkedTo"])
	setIfPresent(reduced, "ownedBy", username["ownedBy"])
	return reduced
}

func usernameNamespace(username map[string]interface{}) interface{} {
	if namespace := nestedMap(username, "namespace"); namespace != nil {
		if address, ok := namespace["address"]; ok {
			return address
		}
		return nil
	}
	return username["namespace"]
}

func reduceReaction(reaction map[string]interface{}) map[string]interface{} {
	reduced := map[string]interface{}{}
	setIfPresent(reduced, "reaction", reaction["reaction"])
	if account := nestedMap(reaction, "account"); account != nil {
		if username := nestedMap(account, "username"); username != nil {
			setIfPresent(reduced, "account", username["value"])
		} else {
			setIfPresent(reduced, "account", account["address"])
		}
	}
	return reduced
}

func nestedMap(parent map[string]interface{}, key string) map[string]interface{} {
	child, ok := parent[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return child
}

func setIfPresent(target map[string]interface{}, key string, value interface{}) {
	if value == nil {
		return
	}
	if s, ok := value.(string); ok && s == "" {
		return
	}
	target[key] = value
}

func stringOrNil(value interface{}) interface{} {
	if s, ok := value.(string); ok {
		return s
	}
	return nil
}
