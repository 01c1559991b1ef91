package main

import (
	"fmt"

	"github.com/fwojciec/newsprint"
)

// Run executes the snapshot command.
func (c *SnapshotCmd) Run(deps *Dependencies) error {
	a, err := buildOne(deps, c.URL)
	if err != nil {
		return err
	}

	snap, err := a.Snapshot()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}
	if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snap); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}
	if deps.Cache != nil {
		if err := deps.Cache.SetSnapshot(deps.Ctx, snap); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: snapshot not cached: %v\n", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved snapshot %s for %s\n", snap.ID, snap.URL)
	return nil
}

// buildOne builds a single article and reports its failure on stderr.
func buildOne(deps *Dependencies, rawURL string) (*newsprint.Article, error) {
	results, err := deps.Batch.Build(deps.Ctx, []string{rawURL}, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}
	r := results[0]
	if r.Err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(r.Err))
		return nil, r.Err
	}
	return r.Article, nil
}
