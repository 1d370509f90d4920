package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// entityNouns maps entity kinds to the singular/plural nouns used in
// summaries. Unknown kinds fall back to "result"/"results".
var entityNouns = map[string][2]string{
	"account":  {"account", "accounts"},
	"post":     {"post", "posts"},
	"group":    {"group", "groups"},
	"app":      {"app", "apps"},
	"username": {"username", "usernames"},
	"reaction": {"reaction", "reactions"},
	"follower": {"follower", "followers"},
}

// Summarize produces the one-line prose overview of a result set. The text
// never contains structured data; concise responses are built from it
// together with a short sample of the reduced items.
func Summarize(kind string, count int, hasMore bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s", count, noun(kind, count))
	if hasMore {
		b.WriteString(" (more available)")
	}
	b.WriteString(". Use show=\"detailed\" for full data.")
	return b.String()
}

// SummarizeSingle produces the prose overview of a single-entity lookup.
func SummarizeSingle(kind, identifier string) string {
	label := titleCaser.String(noun(kind, 1))
	if identifier == "" {
		return fmt.Sprintf("%s found. Use show=\"detailed\" for full data.", label)
	}
	return fmt.Sprintf("%s %s found. Use show=\"detailed\" for full data.", label, identifier)
}

func noun(kind string, count int) string {
	nouns, ok := entityNouns[strings.ToLower(kind)]
	if !ok {
		nouns = [2]string{"result", "results"}
	}
	if count == 1 {
		return nouns[0]
	}
	return nouns[1]
}

// SampleSummary renders a short plain-text sample of reduced items, one
// line per item, capped at max entries. Lines carry the most recognizable
// field of each entity kind.
func SampleSummary(items []map[string]interface{}, max int) string {
	if len(items) == 0 || max <= 0 {
		return ""
	}
	if max > len(items) {
		max = len(items)
	}
	lines := make([]string, 0, max)
	for _, item := range items[:max] {
		lines = append(lines, "- "+itemLine(item))
	}
	return strings.Join(lines, "\n")
}

func itemLine(item map[string]interface{}) string {
	if label := itemLabel(item); label != "" {
		if detail := itemDetail(item); detail != "" {
			return label + ": " + detail
		}
		return label
	}
	return "(unnamed)"
}

// itemLabel picks the identifying field of a reduced entity, preferring
// human-readable handles over addresses and ids.
func itemLabel(item map[string]interface{}) string {
	for _, key := range []string{"username", "name", "value", "author", "account", "address", "id"} {
		if s, ok := item[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func itemDetail(item map[string]interface{}) string {
	for _, key := range []string{"content", "bio", "description", "reaction"} {
		if s, ok := item[key].(string); ok && s != "" {
			return clip(s, 80)
		}
	}
	return ""
}

func clip(text string, max int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) <= max {
		return text
	}
	return strings.TrimSpace(text[:max]) + "..."
}
