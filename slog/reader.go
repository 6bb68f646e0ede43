package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

// Ensure LoggingPageReader implements adgen.PageReader.
var _ adgen.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader wraps a PageReader with logging.
type LoggingPageReader struct {
	next   adgen.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next adgen.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadSite delegates to the wrapped reader and logs the pages read.
func (r *LoggingPageReader) ReadSite(ctx context.Context, siteURL string, services []string) (pages []*adgen.Page, err error) {
	defer func(begin time.Time) {
		chars := 0
		for _, p := range pages {
			chars += len(p.Content)
		}
		logCall(ctx, r.logger, "read site", begin, err,
			slog.String("url", siteURL),
			slog.Int("services", len(services)),
			slog.Int("pages", len(pages)),
			slog.Int("chars", chars),
		)
	}(time.Now())
	return r.next.ReadSite(ctx, siteURL, services)
}
