package aggregators

import (
	"regexp"
	"strings"
)

var (
	repeatedAppPattern = regexp.MustCompile(`(app/)+`)
	absoluteURLPattern = regexp.MustCompile(`^/https?://[\w.]+/`)
)

// NormalizeURL collapses repeated "app/" segments and strips an absolute-URL prefix
// recorded as a path, e.g. "/https://example.com/path" becomes "/path".
func NormalizeURL(url string) string {
	url = repeatedAppPattern.ReplaceAllString(url, "app/")
	return absoluteURLPattern.ReplaceAllString(url, "/")
}

type queryParam struct {
	key   string
	value string
}

type parsedURL struct {
	segments []string
	params   []queryParam
}

// parseURL splits a normalised URL into path segments and query parameters.
// Returns false for URLs not starting with "/".
//
// A trailing slash yields a trailing empty segment: "/" parses to [""] and
// "/a/" to ["a", ""]. Query fragments without "=" are dropped; the value is
// everything after the first "=".
func parseURL(url string) (parsedURL, bool) {
	if !strings.HasPrefix(url, "/") {
		return parsedURL{}, false
	}

	path, query, hasQuery := strings.Cut(url, "?")

	var params []queryParam
	if hasQuery {
		for _, pair := range strings.Split(query, "&") {
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}
			params = append(params, queryParam{key: key, value: value})
		}
	}

	return parsedURL{
		segments: strings.Split(path, "/")[1:],
		params:   params,
	}, true
}
