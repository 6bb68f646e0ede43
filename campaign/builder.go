// Package campaign turns a website into Google Ads assets: it reads the
// site, asks the model for a marketing brief, asks again for ad assets
// based on that brief, and records the run.
package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/gemini"
	"github.com/fwojciec/adgen/site"
)

// Ensure Builder implements adgen.RunBuilder at compile time.
var _ adgen.RunBuilder = (*Builder)(nil)

// Builder generates ad assets for a website.
//
// Pages is consulted only for website-only requests and may be nil, in
// which case the model works from the URL alone. Runs may be nil, in which
// case runs are returned without being stored.
type Builder struct {
	Generator   adgen.Generator
	Pages       adgen.PageReader
	Runs        adgen.RunService
	Model       string
	RetryDelays []time.Duration
	Logf        site.LogFunc
}

// Build generates a marketing brief and ad assets for req. The returned
// run holds the raw asset text; parse it with adgen.Parse.
func (b *Builder) Build(ctx context.Context, req adgen.BriefRequest) (*adgen.Run, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	normalized, err := adgen.NormalizeURL(req.URL)
	if err != nil {
		return nil, err
	}
	req.URL = normalized

	var pages []*adgen.Page
	if req.WebsiteOnly && b.Pages != nil {
		b.logf("reading %s", req.URL)
		pages, err = b.Pages.ReadSite(ctx, req.URL, req.Services)
		if err != nil {
			return nil, err
		}
		b.logf("read %d pages", len(pages))
	}

	b.logf("generating marketing brief")
	brief, err := b.generate(ctx, "brief", gemini.BuildBriefPrompt(req, pages), adgen.GenerateOptions{Search: !req.WebsiteOnly})
	if err != nil {
		return nil, fmt.Errorf("generate brief: %w", err)
	}

	b.logf("generating ad assets")
	response, err := b.generate(ctx, "ad assets", gemini.BuildAdCopyPrompt(brief), adgen.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("generate ad assets: %w", err)
	}

	run := &adgen.Run{
		URL:         req.URL,
		Services:    req.Services,
		WebsiteOnly: req.WebsiteOnly,
		Model:       b.Model,
		Brief:       brief,
		Response:    response,
		CreatedAt:   time.Now().UTC(),
	}

	if b.Runs != nil {
		if err := b.Runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
	}

	return run, nil
}

func (b *Builder) generate(ctx context.Context, label, prompt string, opts adgen.GenerateOptions) (string, error) {
	delays := b.RetryDelays
	if delays == nil {
		delays = site.DefaultRetryDelays()
	}
	return site.Retry(ctx, delays, b.Logf, label, func(ctx context.Context) (string, error) {
		return b.Generator.Generate(ctx, prompt, opts)
	})
}

func (b *Builder) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}
