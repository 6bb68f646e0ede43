package main

import (
	"fmt"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/fs"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	services := c.Services
	if c.ServicesFile != "" {
		text, err := readInput(deps, c.ServicesFile)
		if err != nil {
			return fail(deps, err)
		}
		services = append(services, adgen.ParseServices(text)...)
	}

	run, err := deps.Builder.Build(deps.Ctx, adgen.BriefRequest{
		URL:         c.URL,
		Services:    services,
		WebsiteOnly: c.WebsiteOnly,
	})
	if err != nil {
		return fail(deps, err)
	}

	if c.Out != "" {
		path, err := fs.NewReportWriter(c.Out, reportOptions(c.HTML)...).WriteRun(deps.Ctx, run)
		if err != nil {
			return fail(deps, err)
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", path)
	}

	return printRun(deps, run, c.JSON, c.ShowBrief)
}
