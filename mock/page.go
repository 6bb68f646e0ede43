package mock

import (
	"context"

	"github.com/fwojciec/adgen"
)

var _ adgen.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of adgen.PageReader.
type PageReader struct {
	ReadSiteFn func(ctx context.Context, siteURL string, services []string) ([]*adgen.Page, error)
}

func (r *PageReader) ReadSite(ctx context.Context, siteURL string, services []string) ([]*adgen.Page, error) {
	return r.ReadSiteFn(ctx, siteURL, services)
}

var _ adgen.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of adgen.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
