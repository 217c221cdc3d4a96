package config

import (
	"log/slog"

	"github.com/katalvlaran/flowsched/partition"
	"github.com/katalvlaran/flowsched/search"
)

// SearchOptions translates the search section into explorer options.
func (c SearchConfig) SearchOptions() []search.Option {
	opts := []search.Option{search.WithTopTierFirst(c.TopTierFirst)}
	if !c.Dedup {
		opts = append(opts, search.WithoutDedup())
	}
	if !c.Bound {
		opts = append(opts, search.WithoutBound())
	}

	return opts
}

// PartitionOptions returns combiner options with the configured worker
// count, the given logger and the explorer options.
func (c SearchConfig) PartitionOptions(logger *slog.Logger) []partition.Option {
	return []partition.Option{
		partition.WithWorkers(c.Workers),
		partition.WithLogger(logger),
		partition.WithSearchOptions(c.SearchOptions()...),
	}
}
