package adgen

import "context"

// Page is a website page read to ground a marketing brief.
type Page struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"` // Markdown
	ContentHash string `json:"contentHash"`
}

// PageReader reads the pages of a website that best describe it.
// Implementations hide sitemap discovery, fetching, extraction and
// conversion.
type PageReader interface {
	// ReadSite returns the start page followed by the most relevant other
	// pages. Services, if given, steer which pages are considered relevant.
	// Returns an error only if the start page cannot be read.
	ReadSite(ctx context.Context, siteURL string, services []string) ([]*Page, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
