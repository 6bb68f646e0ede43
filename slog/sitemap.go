package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

// Ensure LoggingSitemapService implements adgen.SitemapService.
var _ adgen.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   adgen.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next adgen.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs how many URLs it
// found.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "sitemap discovery", begin, err,
			slog.String("url", baseURL),
			slog.Int("count", len(urls)),
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL)
}
