package ratelimit

import "strings"

// MatchRule returns the first rule whose method and pattern match the request,
// or nil. Patterns are slash-separated; a "*" segment matches any single
// segment and a trailing "/" matches any deeper path. GET /health is never
// metered.
func MatchRule(path, method string, rules []Rule) *Rule {
	if path == "/health" && method == "GET" {
		return &Rule{Pattern: "/health", Method: method}
	}

	for i := range rules {
		r := &rules[i]
		if r.Method == method && matchPattern(r.Pattern, path) {
			return r
		}
	}
	return nil
}

func matchPattern(pattern, path string) bool {
	prefix := strings.HasSuffix(pattern, "/")
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")

	if prefix {
		if len(xs) <= len(ps) {
			return false
		}
		xs = xs[:len(ps)]
	} else if len(xs) != len(ps) {
		return false
	}

	for i := range ps {
		if ps[i] != "*" && ps[i] != xs[i] {
			return false
		}
	}
	return true
}
