package site

import (
	"net/url"
	"path"
	"slices"
	"strings"
	"unicode"
)

// skipExtensions are file types that never describe the business.
var skipExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".svg": true, ".webp": true, ".zip": true, ".xml": true, ".json": true,
	".css": true, ".js": true, ".mp3": true, ".mp4": true,
}

// skipSegments are path segments of pages with no marketing content.
var skipSegments = map[string]bool{
	"login": true, "signin": true, "sign-in": true, "register": true,
	"cart": true, "checkout": true, "account": true, "my-account": true,
	"privacy": true, "privacy-policy": true, "terms": true, "cookies": true,
	"cookie-policy": true, "wp-admin": true, "wp-login.php": true,
	"feed": true, "tag": true, "author": true, "search": true,
}

// overviewSegments mark pages that usually summarize what a business offers.
var overviewSegments = map[string]bool{
	"about": true, "about-us": true, "services": true, "service": true,
	"products": true, "product": true, "solutions": true, "pricing": true,
	"plans": true, "features": true,
}

// stopWords are dropped from service names before matching paths.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "our": true,
	"your": true, "from": true,
}

// Rank orders candidate URLs for reading and keeps at most limit of them.
// The start URL always comes first. Other URLs are ordered by how many
// service keywords their path mentions, then overview pages (about,
// services, pricing), then by path depth and length. Candidates on other
// hosts, duplicates, assets and account or legal pages are dropped.
func Rank(startURL string, candidates []string, services []string, limit int) []string {
	start, err := url.Parse(startURL)
	if err != nil {
		return []string{startURL}
	}
	host := bareHost(start.Host)
	keywords := serviceKeywords(services)

	type candidate struct {
		url      string
		score    int
		overview bool
		depth    int
		index    int
	}

	seen := map[string]bool{urlKey(start): true}
	var ranked []candidate
	for i, raw := range candidates {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			continue
		}
		if bareHost(u.Host) != host || skipPath(u.Path) {
			continue
		}
		key := urlKey(u)
		if seen[key] {
			continue
		}
		seen[key] = true

		p := strings.ToLower(u.Path)
		c := candidate{url: u.String(), depth: depth(p), index: i}
		for _, kw := range keywords {
			if strings.Contains(p, kw) {
				c.score++
			}
		}
		for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
			if overviewSegments[seg] {
				c.overview = true
			}
		}
		ranked = append(ranked, c)
	}

	slices.SortStableFunc(ranked, func(a, b candidate) int {
		switch {
		case a.score != b.score:
			return b.score - a.score
		case a.overview != b.overview:
			if a.overview {
				return -1
			}
			return 1
		case a.depth != b.depth:
			return a.depth - b.depth
		case len(a.url) != len(b.url):
			return len(a.url) - len(b.url)
		}
		return a.index - b.index
	})

	result := []string{startURL}
	for _, c := range ranked {
		if limit > 0 && len(result) >= limit {
			break
		}
		result = append(result, c.url)
	}
	return result
}

// serviceKeywords splits service names into distinct lowercase words of at
// least three letters.
func serviceKeywords(services []string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, s := range services {
		words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, w := range words {
			if len(w) < 3 || stopWords[w] || seen[w] {
				continue
			}
			seen[w] = true
			keywords = append(keywords, w)
		}
	}
	return keywords
}

func skipPath(p string) bool {
	p = strings.ToLower(p)
	if skipExtensions[path.Ext(p)] {
		return true
	}
	for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
		if skipSegments[seg] {
			return true
		}
	}
	return false
}

func depth(p string) int {
	p = strings.Trim(p, "/")
	if p == "" {
		return 0
	}
	return strings.Count(p, "/") + 1
}

// urlKey identifies a page regardless of "www.", trailing slash, scheme
// and fragment.
func urlKey(u *url.URL) string {
	key := bareHost(u.Host) + strings.TrimSuffix(u.Path, "/")
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	return key
}

func bareHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
