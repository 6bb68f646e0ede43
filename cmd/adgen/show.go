package main

import (
	"fmt"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}

	if c.Raw {
		fmt.Fprintln(deps.Stdout, run.Response)
		return nil
	}

	return printRun(deps, run, c.JSON, c.ShowBrief)
}
