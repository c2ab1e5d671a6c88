package search

import "github.com/sahilm/fuzzy"

// Suggest returns up to limit names that contain the characters of query in
// order, best match first. A limit <= 0 returns every match. An empty query
// returns nil.
func Suggest(query string, names []string, limit int) []string {
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, names)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
