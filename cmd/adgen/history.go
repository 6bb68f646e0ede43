package main

import (
	"fmt"

	"github.com/fwojciec/adgen"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := adgen.RunFilter{Limit: c.Limit}
	if c.URL != "" {
		u, err := adgen.NormalizeURL(c.URL)
		if err != nil {
			return fail(deps, err)
		}
		filter.URL = &u
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		return fail(deps, err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'adgen generate' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.URL)
	}

	return nil
}
