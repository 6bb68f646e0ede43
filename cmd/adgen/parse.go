package main

import (
	"fmt"

	"github.com/fwojciec/adgen"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return fail(deps, err)
	}

	doc := adgen.Parse(text)
	if c.JSON {
		return printJSON(deps.Stdout, doc)
	}

	fmt.Fprintln(deps.Stdout, adgen.FormatDocument(doc))
	return nil
}
