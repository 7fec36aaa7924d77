package scan

import "regexp"

// endpointPattern matches an endpoint declaration: the POST keyword followed by
// a slash-rooted path running to the next whitespace.
var endpointPattern = regexp.MustCompile(`POST\s+(/\S+)`)

// Endpoints returns every endpoint path declared in text, deduplicated in
// first-occurrence order. A path repeated later in the document is not
// re-added.
func Endpoints(text string) []string {
	var urls []string
	seen := make(map[string]bool)
	for _, m := range endpointPattern.FindAllStringSubmatch(text, -1) {
		u := m[1]
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls
}
