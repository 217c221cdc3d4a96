package partition

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/flowsched/search"
)

// MaxUniverse caps the producer count for subset enumeration (2^(n-1) pairs).
const MaxUniverse = 30

// Sentinel errors for the partition combiner.
var (
	// ErrNilCatalog is returned if a nil catalog pointer is passed.
	ErrNilCatalog = errors.New("partition: catalog is nil")

	// ErrUniverseTooLarge is returned when the catalog has more than MaxUniverse producers.
	ErrUniverseTooLarge = errors.New("partition: producer universe too large")

	// ErrNotValve is returned for build-style catalogs: their agents would
	// each start with the full base rate, and their states do not track an
	// opened set.
	ErrNotValve = errors.New("partition: catalog is not valve style")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("partition: invalid option supplied")
)

// Option configures BestPartitioned.
type Option func(*Options)

// Options holds the worker count, the logger and the options forwarded to
// every single-agent search.
type Options struct {
	// Workers is the number of goroutines evaluating subsets.
	Workers int

	// Logger receives progress records at debug level.
	Logger *slog.Logger

	// SearchOptions are passed to each search.Search call. They are shared by
	// all workers, so hooks must be safe for concurrent use and
	// search.WithStats must not be used.
	SearchOptions []search.Option

	err error
}

// DefaultOptions returns one worker per available CPU (at least one),
// a discarding logger and no extra search options.
func DefaultOptions() Options {
	return Options{
		Workers: defaultWorkers(),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

func defaultWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}

	return 1
}

// WithWorkers sets the number of parallel workers.
//
//	n >= 1: use n workers
//	n == 0: hardware concurrency (the default)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = defaultWorkers()
		default:
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

// WithSearchOptions appends options forwarded to every single-agent search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.SearchOptions = append(o.SearchOptions, opts...)
	}
}
