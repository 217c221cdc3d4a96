package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flowsched/catalog"
)

// Sentinel errors for Search.
var (
	// ErrNilCatalog is returned if a nil catalog pointer is passed.
	ErrNilCatalog = errors.New("search: catalog is nil")

	// ErrNegativeHorizon is returned for horizon < 0.
	ErrNegativeHorizon = errors.New("search: negative horizon")

	// ErrStateMismatch is returned when the initial state cannot belong to
	// the catalog (time outside [0, horizon], negative stock or rate, or a
	// valve location that is not a node of the lag table).
	ErrStateMismatch = errors.New("search: initial state does not fit catalog")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures Search via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Stats collects counters from one exploration. Counters are added to,
// never reset, so one Stats may accumulate several runs.
type Stats struct {
	Enqueued int // states put on the frontier, seed included
	Expanded int // states popped and evaluated
	Pruned   int // successors dropped by the upper bound
	Deduped  int // successors dropped because their key was already reached no later
	Stale    int // queued states superseded by an earlier arrival at the same key
}

// Options holds parameters and callbacks to customize Search.
type Options struct {
	// Ctx allows cancellation; it is polled every 4096 expansions.
	Ctx context.Context

	// Dedup enables the visited map keyed by (stock, rate, location, opened).
	Dedup bool

	// TopTierFirst makes a build-style state whose candidates include a
	// top-tier producer explore only those activations. It is a heuristic:
	// exact only for catalogs where delaying a target producer never pays.
	TopTierFirst bool

	// Bound enables upper-bound pruning of successors.
	Bound bool

	// Restrict limits the producers that may be activated. Only
	// meaningful when restricted is set.
	Restrict catalog.Set

	// OnEnqueue is called for every state put on the frontier.
	OnEnqueue func(st State)

	// OnExpand is called for every state popped for expansion.
	OnExpand func(st State)

	// OnTerminal receives every expanded state with its closed-form
	// terminal value.
	OnTerminal func(st State, value int64)

	// Stats, if non-nil, receives exploration counters.
	Stats *Stats

	restricted bool
	err        error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - dedup, bound pruning and top-tier-first enabled
//   - no producer restriction
//   - no-op hooks and no stats.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Dedup:        true,
		TopTierFirst: true,
		Bound:        true,
		OnEnqueue:    func(State) {},
		OnExpand:     func(State) {},
		OnTerminal:   func(State, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithoutDedup disables the visited map. Results are unchanged; only the
// number of explored states grows.
func WithoutDedup() Option {
	return func(o *Options) { o.Dedup = false }
}

// WithTopTierFirst toggles the top-tier-first move ordering rule.
func WithTopTierFirst(on bool) Option {
	return func(o *Options) { o.TopTierFirst = on }
}

// WithoutBound disables upper-bound pruning. Needed when every reachable
// terminal must be observed, e.g. by an OnTerminal collector.
func WithoutBound() Option {
	return func(o *Options) { o.Bound = false }
}

// WithRestrict limits activations to the producers in s. Members outside
// the catalog are reported as ErrOptionViolation by Search.
func WithRestrict(s catalog.Set) Option {
	return func(o *Options) {
		o.Restrict = s
		o.restricted = true
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(st State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run before a state is expanded.
func WithOnExpand(fn func(st State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnTerminal registers a callback receiving each expanded state and its
// terminal value.
func WithOnTerminal(fn func(st State, value int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTerminal = fn
		}
	}
}

// WithStats directs exploration counters into s.
//
//	s == nil: invalid option → ErrOptionViolation
func WithStats(s *Stats) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: Stats must not be nil", ErrOptionViolation)
			return
		}
		o.Stats = s
	}
}
