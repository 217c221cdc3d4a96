// Package batch evaluates many independent catalogs concurrently and
// aggregates their best values.
package batch

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/parse"
	"github.com/katalvlaran/flowsched/search"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("batch: invalid option supplied")

// Job is one catalog to evaluate, identified by ID.
type Job struct {
	ID      int
	Catalog *catalog.Catalog
}

// Result is the best value found for the job with the same ID.
type Result struct {
	ID    int
	Value int64
}

// Option configures Evaluate.
type Option func(*Options)

// Options holds the worker count, logger and forwarded search options.
type Options struct {
	Workers       int
	Logger        *slog.Logger
	SearchOptions []search.Option
	err           error
}

// DefaultOptions returns one worker per CPU and a discarding logger.
func DefaultOptions() Options {
	return Options{Workers: max(runtime.GOMAXPROCS(0), 1), Logger: slog.New(slog.DiscardHandler)}
}

// WithWorkers sets the maximum number of concurrent searches.
// n == 0 keeps the default; n < 0 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithLogger sets the progress logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearchOptions appends options forwarded to every search. They are
// shared between goroutines.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.SearchOptions = append(o.SearchOptions, opts...) }
}

// FromBlueprints turns parsed blueprints into jobs.
func FromBlueprints(bps []parse.Blueprint) []Job {
	jobs := make([]Job, len(bps))
	for i, bp := range bps {
		jobs[i] = Job{ID: bp.ID, Catalog: bp.Catalog}
	}

	return jobs
}

// Evaluate searches every job up to horizon with a bounded goroutine pool
// and returns the results in job order. The first failure cancels the
// remaining searches.
func Evaluate(ctx context.Context, jobs []Job, horizon int, opts ...Option) ([]Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	type indexed struct {
		pos int
		Result
	}
	p := pool.NewWithResults[indexed]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(o.Workers)
	for pos, job := range jobs {
		p.Go(func(ctx context.Context) (indexed, error) {
			if job.Catalog == nil {
				return indexed{}, fmt.Errorf("batch: job %d: %w", job.ID, search.ErrNilCatalog)
			}
			sopts := append(slices.Clone(o.SearchOptions), search.WithContext(ctx))
			v, err := search.Search(job.Catalog, search.InitialState(job.Catalog), horizon, sopts...)
			if err != nil {
				return indexed{}, fmt.Errorf("batch: job %d: %w", job.ID, err)
			}
			o.Logger.Debug("batch job done", "id", job.ID, "value", v)

			return indexed{pos: pos, Result: Result{ID: job.ID, Value: v}}, nil
		})
	}
	done, err := p.Wait()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(done, func(a, b indexed) int { return cmp.Compare(a.pos, b.pos) })
	out := make([]Result, len(done))
	for i, d := range done {
		out[i] = d.Result
	}

	return out, nil
}

// QualitySum returns Σ ID·Value.
func QualitySum(results []Result) int64 {
	var sum int64
	for _, r := range results {
		sum += int64(r.ID) * r.Value
	}

	return sum
}

// Product multiplies the values of the first n results (all of them when
// n exceeds the count). The product of no results is 1.
func Product(results []Result, n int) int64 {
	prod := int64(1)
	for i, r := range results {
		if i >= n {
			break
		}
		prod *= r.Value
	}

	return prod
}
