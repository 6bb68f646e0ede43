package main

import (
	"fmt"

	"github.com/fwojciec/adgen"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return fail(deps, adgen.Errorf(adgen.EINVALID, "use --force to confirm deletion"))
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if adgen.ErrorCode(err) == adgen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'adgen history' to see available runs.\n", c.ID)
			return err
		}
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
