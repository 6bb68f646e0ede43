// Package site reads the pages of a website that best describe the
// business behind it. It coordinates sitemap discovery, ranking, fetching,
// extraction and conversion, and trims the result to a token budget.
package site

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/adgen"
	"golang.org/x/sync/errgroup"
)

// Reader defaults.
const (
	DefaultMaxPages    = 5
	DefaultConcurrency = 3
	DefaultTokenBudget = 30000
)

// Ensure Reader implements adgen.PageReader at compile time.
var _ adgen.PageReader = (*Reader)(nil)

// Reader implements adgen.PageReader.
//
// Sitemaps, Fallback, Meta, TokenCounter and RateLimiter are optional.
// A negative TokenBudget disables trimming. Logf may be called from
// several goroutines at once.
type Reader struct {
	Sitemaps     adgen.SitemapService
	Fetcher      adgen.Fetcher
	Extractor    adgen.Extractor
	Fallback     adgen.Extractor
	Meta         adgen.MetaExtractor
	Converter    adgen.Converter
	TokenCounter adgen.TokenCounter
	RateLimiter  adgen.DomainLimiter
	MaxPages     int
	Concurrency  int
	TokenBudget  int
	RetryDelays  []time.Duration
	Logf         LogFunc
}

// ReadSite returns the start page followed by the most relevant other pages
// of the site. Failing to read the start page is an error; other pages that
// fail are logged and skipped.
func (r *Reader) ReadSite(ctx context.Context, siteURL string, services []string) ([]*adgen.Page, error) {
	start, links, err := r.readPage(ctx, siteURL)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", siteURL, err)
	}

	candidates := r.discover(ctx, siteURL)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	candidates = append(candidates, links...)

	ranked := Rank(siteURL, candidates, services, r.maxPages())
	others := r.readPages(ctx, ranked[1:])
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages := []*adgen.Page{start}
	seen := map[string]bool{start.ContentHash: true}
	for _, p := range others {
		if p == nil || seen[p.ContentHash] {
			continue
		}
		seen[p.ContentHash] = true
		pages = append(pages, p)
	}

	return r.trim(ctx, pages), nil
}

// discover returns the sitemap URLs of the site. A site without a usable
// sitemap yields none.
func (r *Reader) discover(ctx context.Context, siteURL string) []string {
	if r.Sitemaps == nil {
		return nil
	}
	urls, err := r.Sitemaps.DiscoverURLs(ctx, siteURL)
	if err != nil {
		r.logf("sitemap %s: %v", siteURL, err)
		return nil
	}
	return urls
}

// readPages reads urls concurrently. The result is in the order of urls,
// with nil for pages that could not be read.
func (r *Reader) readPages(ctx context.Context, urls []string) []*adgen.Page {
	pages := make([]*adgen.Page, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())
	for i, u := range urls {
		g.Go(func() error {
			page, _, err := r.readPage(gctx, u)
			if err != nil {
				r.logf("skip %s: %v", u, err)
				return nil
			}
			pages[i] = page
			return nil
		})
	}
	_ = g.Wait()

	return pages
}

// readPage fetches, extracts and converts a single page. It also returns
// the same-host links found on the page.
func (r *Reader) readPage(ctx context.Context, pageURL string) (*adgen.Page, []string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, adgen.Errorf(adgen.EINVALID, "invalid URL %s: %v", pageURL, err)
	}

	// Every attempt, retries included, waits its turn with the limiter.
	html, err := Retry(ctx, r.retryDelays(), r.Logf, pageURL, func(ctx context.Context) (string, error) {
		if r.RateLimiter != nil {
			if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		return r.Fetcher.Fetch(ctx, pageURL)
	})
	if err != nil {
		return nil, nil, err
	}

	meta := &adgen.PageMeta{}
	if r.Meta != nil {
		if m, err := r.Meta.ExtractMeta(html, pageURL); err != nil {
			r.logf("meta %s: %v", pageURL, err)
		} else {
			meta = m
		}
	}

	extracted, err := r.extract(html)
	if err != nil {
		return nil, nil, err
	}

	var content string
	if strings.TrimSpace(extracted.ContentHTML) != "" {
		content, err = r.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, nil, err
		}
	}
	if content == "" && len(meta.Headings) > 0 {
		content = "# " + strings.Join(meta.Headings, "\n\n# ")
	}
	if content == "" {
		return nil, nil, adgen.Errorf(adgen.ENOTFOUND, "no content found at %s", pageURL)
	}

	return &adgen.Page{
		URL:         pageURL,
		Title:       firstNonEmpty(meta.Title, extracted.Title),
		Description: firstNonEmpty(meta.Description, extracted.Description),
		Content:     content,
		ContentHash: computeHash(content),
	}, meta.Links, nil
}

// extract runs the primary extractor and falls back to the secondary one
// when the primary fails or finds no content.
func (r *Reader) extract(html string) (*adgen.ExtractResult, error) {
	result, err := r.Extractor.Extract(html)
	if err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		return result, nil
	}
	if r.Fallback == nil {
		return result, err
	}

	fallback, fallbackErr := r.Fallback.Extract(html)
	if fallbackErr != nil {
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	if result != nil {
		fallback.Title = firstNonEmpty(result.Title, fallback.Title)
		fallback.Description = firstNonEmpty(result.Description, fallback.Description)
	}
	return fallback, nil
}

// trim keeps pages within the token budget. Pages are dropped from the end;
// a first page that alone exceeds the budget is cut by characters.
func (r *Reader) trim(ctx context.Context, pages []*adgen.Page) []*adgen.Page {
	budget := r.tokenBudget()
	if r.TokenCounter == nil || budget <= 0 {
		return pages
	}

	total := 0
	for i, p := range pages {
		tokens, err := r.TokenCounter.CountTokens(ctx, p.Content)
		if err != nil {
			r.logf("count tokens %s: %v", p.URL, err)
			return pages
		}
		if total+tokens <= budget {
			total += tokens
			continue
		}

		if i == 0 {
			p.Content = truncateRunes(p.Content, len([]rune(p.Content))*budget/tokens)
			r.logf("cut %s to fit %d tokens", p.URL, budget)
			return pages[:1]
		}
		r.logf("dropped %d pages over %d token budget", len(pages)-i, budget)
		return pages[:i]
	}
	return pages
}

func (r *Reader) maxPages() int {
	if r.MaxPages > 0 {
		return r.MaxPages
	}
	return DefaultMaxPages
}

func (r *Reader) concurrency() int {
	if r.Concurrency > 0 {
		return r.Concurrency
	}
	return DefaultConcurrency
}

func (r *Reader) tokenBudget() int {
	if r.TokenBudget != 0 {
		return r.TokenBudget
	}
	return DefaultTokenBudget
}

func (r *Reader) retryDelays() []time.Duration {
	if r.RetryDelays != nil {
		return r.RetryDelays
	}
	return DefaultRetryDelays()
}

func (r *Reader) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	if n < 0 {
		n = 0
	}
	return string(runes[:n])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
