package erpapi

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type pageFetcher[T any] func(ctx context.Context, page int) ([]T, int, error)

// fetchAll reads page 1 to learn the page count, then the remaining pages concurrently.
// Results are stitched in page order regardless of completion order; the first failure
// cancels the rest.
func fetchAll[T any](ctx context.Context, concurrency int, fetch pageFetcher[T]) ([]T, error) {
	first, totalPages, err := fetch(ctx, 1)
	if err != nil {
		return nil, err
	}
	if totalPages <= 1 {
		return first, nil
	}

	pages := make([][]T, totalPages)
	pages[0] = first

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for page := 2; page <= totalPages; page++ {
		g.Go(func() error {
			items, _, err := fetch(gctx, page)
			if err != nil {
				return err
			}
			pages[page-1] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range pages {
		total += len(p)
	}
	all := make([]T, 0, total)
	for _, p := range pages {
		all = append(all, p...)
	}
	return all, nil
}
