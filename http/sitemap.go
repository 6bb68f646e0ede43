package http

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/adgen"
)

// Ensure SitemapService implements adgen.SitemapService.
var _ adgen.SitemapService = (*SitemapService)(nil)

// MaxSitemapURLs bounds how many URLs DiscoverURLs returns. Large sites list
// tens of thousands of pages; only a handful are ever read.
const MaxSitemapURLs = 1000

// maxSitemaps bounds how many sitemap files a single discovery fetches.
const maxSitemaps = 20

// defaultPriority is the sitemap protocol's priority for entries without one.
const defaultPriority = 0.5

// SitemapService discovers page URLs from robots.txt and sitemap.xml.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns the pages a site lists in its sitemaps, highest
// <priority> first within each sitemap. Returns an empty slice (not nil) if
// the site has no sitemap.
//
// URLs on other hosts are dropped; "www." is ignored when comparing hosts.
// When baseURL has a non-root path (e.g., https://example.com/services/),
// only URLs under that path are returned. A broken sitemap referenced from
// an index is skipped.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, adgen.Errorf(adgen.EINVALID, "invalid base URL: %s", baseURL)
	}

	roots, err := s.locateSitemaps(ctx, base)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalk{
		service: s,
		host:    base.Host,
		prefix:  strings.TrimSuffix(base.Path, "/"),
		visited: make(map[string]bool),
		found:   make(map[string]bool),
		urls:    []string{},
	}
	for _, loc := range roots {
		if err := w.visit(ctx, loc, 0); err != nil {
			return nil, err
		}
		if w.full() {
			break
		}
	}

	return w.urls, nil
}

// locateSitemaps returns the sitemaps declared in robots.txt, or
// /sitemap.xml when robots.txt declares none and that file exists.
func (s *SitemapService) locateSitemaps(ctx context.Context, base *url.URL) ([]string, error) {
	at := func(path string) string {
		return (&url.URL{Scheme: base.Scheme, Host: base.Host, Path: path}).String()
	}

	declared, err := s.robotsSitemaps(ctx, at("/robots.txt"))
	if err == nil && len(declared) > 0 {
		return declared, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fallback := at("/sitemap.xml")
	if s.exists(ctx, fallback) {
		return []string{fallback}, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, nil
}

// robotsSitemaps reads the Sitemap: directives of a robots.txt file.
func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if loc := strings.TrimSpace(value); loc != "" {
			sitemaps = append(sitemaps, loc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// sitemapWalk collects page URLs from a tree of sitemaps.
type sitemapWalk struct {
	service *SitemapService
	host    string
	prefix  string
	visited map[string]bool
	found   map[string]bool
	urls    []string
}

func (w *sitemapWalk) full() bool {
	return len(w.urls) >= MaxSitemapURLs || len(w.visited) >= maxSitemaps
}

// visit reads one sitemap. Errors from sitemaps nested in an index are
// dropped so one broken file does not hide the rest.
func (w *sitemapWalk) visit(ctx context.Context, loc string, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[loc] || w.full() {
		return nil
	}
	w.visited[loc] = true

	root, err := w.service.readSitemap(ctx, loc)
	if err != nil {
		if depth > 0 && ctx.Err() == nil {
			return nil
		}
		return err
	}

	if root.Tag == "sitemapindex" {
		for _, child := range locs(root, "sitemap") {
			if err := w.visit(ctx, child.loc, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	entries := locs(root, "url")
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})
	for _, e := range entries {
		w.add(e.loc)
	}
	return nil
}

func (w *sitemapWalk) add(rawURL string) {
	if w.found[rawURL] || len(w.urls) >= MaxSitemapURLs {
		return
	}
	u, err := url.Parse(rawURL)
	if err != nil || !sameHost(u.Host, w.host) || !underPath(u.Path, w.prefix) {
		return
	}
	w.found[rawURL] = true
	w.urls = append(w.urls, rawURL)
}

type sitemapEntry struct {
	loc      string
	priority float64
}

// locs returns the <loc> of every child element named tag, with its
// <priority> when present and valid.
func locs(root *etree.Element, tag string) []sitemapEntry {
	var entries []sitemapEntry
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil || strings.TrimSpace(loc.Text()) == "" {
			continue
		}
		e := sitemapEntry{loc: strings.TrimSpace(loc.Text()), priority: defaultPriority}
		if p := el.SelectElement("priority"); p != nil {
			if v, err := strconv.ParseFloat(strings.TrimSpace(p.Text()), 64); err == nil {
				e.priority = v
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// readSitemap fetches and parses a sitemap, decompressing .gz files.
func (s *SitemapService) readSitemap(ctx context.Context, loc string) (*etree.Element, error) {
	body, err := s.get(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(strings.ToLower(loc), ".gz") {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("decompressing sitemap %s: %w", loc, err)
		}
		defer gz.Close()
		r = gz
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(io.LimitReader(r, MaxBodySize)); err != nil {
		return nil, fmt.Errorf("parsing sitemap %s: %w", loc, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap %s", loc)
	}
	return root, nil
}

// sameHost reports whether two hosts match, ignoring case and a "www."
// prefix on either side.
func sameHost(a, b string) bool {
	return strings.TrimPrefix(strings.ToLower(a), "www.") ==
		strings.TrimPrefix(strings.ToLower(b), "www.")
}

// underPath reports whether path is prefix or below it, respecting segment
// boundaries: /services matches /services/ and /services/repair but not
// /services-old. An empty prefix matches everything.
func underPath(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// get fetches a URL and returns its body when the status is 200.
func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, statusError(resp.StatusCode, target)
	}
	return resp.Body, nil
}

// exists reports whether a HEAD request for target returns 200.
func (s *SitemapService) exists(ctx context.Context, target string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
