// Package goquery implements adgen.MetaExtractor using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/adgen"
)

// Ensure MetaExtractor implements adgen.MetaExtractor at compile time.
var _ adgen.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor reads a page's title, description, headings and same-host
// links. Open Graph tags are used when the plain ones are missing.
type MetaExtractor struct{}

// NewMetaExtractor creates a new MetaExtractor.
func NewMetaExtractor() *MetaExtractor {
	return &MetaExtractor{}
}

// ExtractMeta parses html and returns its metadata.
func (e *MetaExtractor) ExtractMeta(html, pageURL string) (*adgen.PageMeta, error) {
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return nil, adgen.Errorf(adgen.EINVALID, "invalid page URL: %s", pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, adgen.Errorf(adgen.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &adgen.PageMeta{
		Title:       firstNonEmpty(collapse(doc.Find("head title").First().Text()), metaContent(doc, `meta[property="og:title"]`)),
		Description: firstNonEmpty(metaContent(doc, `meta[name="description"]`), metaContent(doc, `meta[property="og:description"]`)),
	}

	doc.Find("h1, h2").Each(func(_ int, sel *goquery.Selection) {
		if text := collapse(sel.Text()); text != "" {
			meta.Headings = append(meta.Headings, text)
		}
	})

	meta.Links = extractLinks(doc, base)

	return meta, nil
}

// extractLinks returns the same-host links in document order.
func extractLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return collapse(content)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// collapse trims s and folds internal whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// points back at the page itself. Fragments are stripped.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	self := *base
	self.Fragment = ""
	if result == self.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL is on the page's host, ignoring a
// "www." prefix.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.") ==
		strings.TrimPrefix(strings.ToLower(base.Host), "www.")
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
