package main

import (
	"fmt"

	"github.com/fwojciec/newsprint"
)

// Run executes the valid command. An invalid body is reported as an
// EINVALID error so scripts can test the exit status.
func (c *ValidCmd) Run(deps *Dependencies) error {
	a, err := buildOne(deps, c.URL)
	if err != nil {
		return err
	}

	v, err := deps.Processor.CheckBody(a)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}

	if !v.Valid {
		fmt.Fprintf(deps.Stdout, "invalid: %s\n", v.Reason)
		return newsprint.Errorf(newsprint.EINVALID, "%s is not a valid article: %s", a.URL, v.Reason)
	}
	fmt.Fprintf(deps.Stdout, "valid: %s\n", v.Reason)
	return nil
}
