package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command. A failed URL does not stop the others;
// the command fails at the end if any URL failed.
func (c *BatchCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return fail(deps, err)
	}

	urls := batchURLs(text)
	if len(urls) == 0 {
		return fail(deps, adgen.Errorf(adgen.EINVALID, "no URLs in %s", c.File))
	}

	var reports adgen.ReportWriter
	if c.Out != "" {
		reports = fs.NewReportWriter(c.Out, reportOptions(c.HTML)...)
	}

	var (
		mu     sync.Mutex
		failed int
	)

	var g errgroup.Group
	g.SetLimit(max(c.Concurrency, 1))
	for _, u := range urls {
		g.Go(func() error {
			run, err := deps.Builder.Build(deps.Ctx, adgen.BriefRequest{URL: u, WebsiteOnly: c.WebsiteOnly})
			var path string
			if err == nil && reports != nil {
				path, err = reports.WriteRun(deps.Ctx, run)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "FAIL %s: %s\n", u, adgen.ErrorMessage(err))
				return nil
			}
			if path != "" {
				fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", run.ID, run.URL, path)
			} else {
				fmt.Fprintf(deps.Stdout, "%s  %s\n", run.ID, run.URL)
			}
			return nil
		})
	}
	_ = g.Wait()

	if failed > 0 {
		return fail(deps, adgen.Errorf(adgen.EINTERNAL, "%d of %d URLs failed", failed, len(urls)))
	}
	return nil
}

// batchURLs returns the non-blank lines of text, skipping # comments.
func batchURLs(text string) []string {
	var urls []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
