// Package search - parallel.go runs independent queries concurrently.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxWorkers is the default concurrency bound for a query batch.
const DefaultMaxWorkers = 4

// SearchAll executes every query through a bounded worker pool and returns
// exactly one Response per query, in input order. Individual failures are
// recorded in their slot and never cancel sibling queries; the call blocks
// until all queries complete. There is no batch-level timeout - each search
// carries its own.
func (c *Client) SearchAll(ctx context.Context, queries []string, maxWorkers int) []Response {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	responses := make([]Response, len(queries))

	// A plain Group rather than WithContext: a failed query must not cancel
	// its siblings, and Search never returns a Go error anyway.
	g := new(errgroup.Group)
	g.SetLimit(maxWorkers)

	for i, query := range queries {
		g.Go(func() error {
			responses[i] = c.Search(ctx, query, maxOrganicResults)
			return nil
		})
	}

	_ = g.Wait()
	return responses
}
