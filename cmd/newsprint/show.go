package main

import (
	"fmt"

	"github.com/fwojciec/newsprint"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if c.URL == "" && c.ID == "" {
		fmt.Fprintln(deps.Stderr, "error: a URL or --id is required")
		return newsprint.Errorf(newsprint.EINVALID, "a URL or --id is required")
	}

	snap, err := c.find(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}

	a, err := snap.Restore()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}

	text := a.Text
	if top := a.TopNode(); !top.IsZero() {
		if text, _, err = deps.Formatter.Format(top.Node(), a.Title); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n%s\n", a.Title, a.URL, text)
	return nil
}

// find looks the snapshot up by ID, or by URL in the cache and then the
// store. Store hits are written back to the cache.
func (c *ShowCmd) find(deps *Dependencies) (*newsprint.Snapshot, error) {
	if c.ID != "" {
		return deps.Snapshots.FindSnapshotByID(deps.Ctx, c.ID)
	}

	if deps.Cache != nil {
		snap, err := deps.Cache.GetSnapshot(deps.Ctx, c.URL)
		if err == nil {
			return snap, nil
		}
		if newsprint.ErrorCode(err) != newsprint.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "warning: cache unavailable: %v\n", err)
		}
	}

	snap, err := deps.Snapshots.FindLatestSnapshot(deps.Ctx, c.URL)
	if err != nil {
		return nil, err
	}
	if deps.Cache != nil {
		if err := deps.Cache.SetSnapshot(deps.Ctx, snap); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: snapshot not cached: %v\n", err)
		}
	}
	return snap, nil
}
