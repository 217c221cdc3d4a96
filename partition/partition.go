package partition

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/search"
)

// BestPartitioned returns the best combined value of two independent agents
// that split the producers of cat between them.
//
// Every subset S of the universe that excludes the last producer is paired
// with its complement, so each complementary pair is evaluated once. Each
// agent runs search.Search from search.InitialState(cat) restricted to its
// half. Pairs are handed to a fixed pool of workers through a channel; each
// worker keeps a local maximum and the results are max-reduced after all
// workers finish, so the answer does not depend on the worker count.
//
// Complexity: O(2^(n-1)) searches for n producers.
func BestPartitioned(ctx context.Context, cat *catalog.Catalog, horizon int, opts ...Option) (int64, error) {
	if cat == nil {
		return 0, ErrNilCatalog
	}
	if cat.Style() != catalog.StyleValve {
		return 0, ErrNotValve
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	n := cat.Len()
	if n > MaxUniverse {
		return 0, fmt.Errorf("%w: %d > %d", ErrUniverseTooLarge, n, MaxUniverse)
	}

	pairs := uint64(1)
	if n > 0 {
		pairs = 1 << uint(n-1)
	}
	workers := o.Workers
	if uint64(workers) > pairs {
		workers = int(pairs)
	}
	full := cat.All()
	initial := search.InitialState(cat)
	o.Logger.Debug("partition start", "producers", n, "pairs", pairs, "workers", workers, "horizon", horizon)

	g, gctx := errgroup.WithContext(ctx)
	subsets := make(chan catalog.Set, workers)
	g.Go(func() error {
		defer close(subsets)
		var s uint64
		for s = 0; s < pairs; s++ {
			select {
			case subsets <- catalog.Set(s):
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	best := make([]int64, workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			base := append(slices.Clone(o.SearchOptions), search.WithContext(gctx))
			run := func(s catalog.Set) (int64, error) {
				return search.Search(cat, initial, horizon, append(base, search.WithRestrict(s))...)
			}
			evaluated := 0
			for s := range subsets {
				mine, err := run(s)
				if err != nil {
					return fmt.Errorf("partition: subset %v: %w", s, err)
				}
				theirs, err := run(full &^ s)
				if err != nil {
					return fmt.Errorf("partition: subset %v: %w", full&^s, err)
				}
				if mine+theirs > best[w] {
					best[w] = mine + theirs
				}
				evaluated++
			}
			o.Logger.Debug("partition worker done", "worker", w, "pairs", evaluated, "best", best[w])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	result := slices.Max(best)
	o.Logger.Debug("partition done", "best", result)

	return result, nil
}

// BestByMask runs one unpruned valve search and returns, for every opened
// set that was reached, the best terminal value with exactly that set open.
func BestByMask(cat *catalog.Catalog, horizon int, opts ...search.Option) (map[catalog.Set]int64, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if cat.Style() != catalog.StyleValve {
		return nil, ErrNotValve
	}
	out := make(map[catalog.Set]int64)
	collect := search.WithOnTerminal(func(st search.State, value int64) {
		if cur, ok := out[st.Opened]; !ok || value > cur {
			out[st.Opened] = value
		}
	})
	all := append(slices.Clone(opts), search.WithoutBound(), collect)
	if _, err := search.Search(cat, search.InitialState(cat), horizon, all...); err != nil {
		return nil, err
	}

	return out, nil
}

// CombineDisjoint returns the best sum of two entries whose sets are
// disjoint. The empty set may pair with itself. Returns 0 for an empty map.
//
// Complexity: O(M²) for M entries.
func CombineDisjoint(byMask map[catalog.Set]int64) int64 {
	keys := slices.Sorted(maps.Keys(byMask))
	var best int64
	for i, a := range keys {
		for _, b := range keys[i:] {
			if a&b != 0 {
				continue
			}
			if sum := byMask[a] + byMask[b]; sum > best {
				best = sum
			}
		}
	}

	return best
}
