package search

import (
	"fmt"

	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/resource"
)

// explorer encapsulates mutable state of one exploration.
type explorer struct {
	cat     *catalog.Catalog
	opts    Options
	horizon int

	allowed catalog.Set
	others  catalog.Set // allowed producers outside the top tier (when it applies)
	gain    int64

	front   *frontier
	visited map[key]int // key → earliest time it was enqueued
	best    int64
	steps   int
	stats   Stats
}

// Search explores the state space of cat from initial up to horizon and
// returns the best terminal value found.
//
// States are expanded in non-decreasing time order. With default options
// successors are deduplicated on their time-independent key and pruned when
// UpperBound cannot beat the best value seen so far. If the context is
// cancelled the best value so far is returned together with ctx.Err().
//
// Returns ErrNilCatalog, ErrNegativeHorizon, ErrStateMismatch or
// ErrOptionViolation for invalid input.
//
// Complexity: O(S·P) time and O(S) memory for S reachable states and P
// producers; S is bounded by the cost ceilings and the bound prune.
func Search(cat *catalog.Catalog, initial State, horizon int, opts ...Option) (int64, error) {
	if cat == nil {
		return 0, ErrNilCatalog
	}
	if horizon < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizon)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if err := checkState(cat, initial, horizon); err != nil {
		return 0, err
	}

	allowed := cat.All()
	if o.restricted {
		if o.Restrict&^allowed != 0 {
			return 0, fmt.Errorf("%w: restrict %v outside %d producers", ErrOptionViolation, o.Restrict, cat.Len())
		}
		allowed = o.Restrict
	}

	e := &explorer{
		cat:     cat,
		opts:    o,
		horizon: horizon,
		allowed: allowed,
		others:  allowed,
		gain:    allowedGain(cat, allowed),
		front:   newFrontier(),
	}
	if o.TopTierFirst {
		e.others = allowed &^ cat.TopTier()
	}
	if o.Dedup {
		e.visited = make(map[key]int)
	}

	e.seed(initial)
	err := e.loop()
	if o.Stats != nil {
		o.Stats.Enqueued += e.stats.Enqueued
		o.Stats.Expanded += e.stats.Expanded
		o.Stats.Pruned += e.stats.Pruned
		o.Stats.Deduped += e.stats.Deduped
		o.Stats.Stale += e.stats.Stale
	}

	return e.best, err
}

// checkState rejects initial states that cannot belong to cat.
func checkState(cat *catalog.Catalog, st State, horizon int) error {
	if st.Time < 0 || st.Time > horizon {
		return fmt.Errorf("%w: time %d outside [0, %d]", ErrStateMismatch, st.Time, horizon)
	}
	var i int
	for i = range st.Stock {
		if st.Stock[i] < 0 || st.Rate[i] < 0 {
			return fmt.Errorf("%w: negative component %d", ErrStateMismatch, i)
		}
	}
	if cat.Style() == catalog.StyleValve {
		if st.Location < 0 || st.Location > cat.Start() {
			return fmt.Errorf("%w: location %d", ErrStateMismatch, st.Location)
		}
		if st.Opened&^cat.All() != 0 {
			return fmt.Errorf("%w: opened %v", ErrStateMismatch, st.Opened)
		}
	}

	return nil
}

// seed enqueues the initial state. It is never pruned.
func (e *explorer) seed(st State) {
	if e.visited != nil {
		e.visited[keyOf(st)] = st.Time
	}
	e.enqueue(st)
}

// enqueue records st and adds it to the frontier.
func (e *explorer) enqueue(st State) {
	e.stats.Enqueued++
	e.opts.OnEnqueue(st)
	e.front.push(st)
}

// offer applies the bound prune and the dedup check to a successor and
// enqueues it if it survives both.
func (e *explorer) offer(st State) {
	if e.opts.Bound && e.bound(st) <= e.best {
		e.stats.Pruned++
		return
	}
	if e.visited != nil {
		k := keyOf(st)
		if t, seen := e.visited[k]; seen && t <= st.Time {
			e.stats.Deduped++
			return
		}
		e.visited[k] = st.Time
	}
	e.enqueue(st)
}

func (e *explorer) bound(st State) int64 {
	if e.cat.Style() == catalog.StyleValve {
		return valveBound(e.cat, st, e.horizon, e.allowed)
	}

	return buildBound(e.cat, st, e.horizon, e.gain)
}

// loop drains the frontier until empty or cancellation.
func (e *explorer) loop() error {
	for {
		// sparse cancellation check
		if e.steps&4095 == 0 {
			if err := e.opts.Ctx.Err(); err != nil {
				return err
			}
		}
		e.steps++

		st, ok := e.front.pop()
		if !ok {
			return nil
		}
		if e.visited != nil && e.visited[keyOf(st)] < st.Time {
			e.stats.Stale++
			continue
		}
		e.expand(st)
	}
}

// expand evaluates st and offers its successors.
func (e *explorer) expand(st State) {
	e.stats.Expanded++
	e.opts.OnExpand(st)

	term := Terminal(e.cat, st, e.horizon)
	if term > e.best {
		e.best = term
	}
	e.opts.OnTerminal(st, term)

	if st.Time >= e.horizon {
		return
	}
	if e.cat.Style() == catalog.StyleValve {
		e.expandValve(st)
		return
	}
	e.expandBuild(st)
}

// expandBuild offers the build successors of st and, unless every
// non-top-tier producer is already a candidate, the wait successor.
func (e *explorer) expandBuild(st State) {
	var cand catalog.Set
	e.allowed.Each(func(i int) {
		if st.Stock.CanAfford(e.cat.Producer(i).Cost) {
			cand = cand.With(i)
		}
	})
	cand &^= st.Skip

	if e.opts.TopTierFirst {
		if top := cand & e.cat.TopTier(); top != 0 {
			top.Each(func(i int) { e.offer(e.build(st, i)) })
			return
		}
	}
	cand.Each(func(i int) {
		if !e.capped(st, i) {
			e.offer(e.build(st, i))
		}
	})
	if e.others != 0 && e.others&^cand == 0 {
		return // waiting could only ever lead to idling
	}

	next := State{
		Time:  st.Time + 1,
		Stock: st.Stock.Add(st.Rate),
		Rate:  st.Rate,
		Skip:  cand,
	}
	next.Stock = e.clamp(next.Stock, next.Rate)
	e.offer(next)
}

// build returns the successor of st that activates producer i.
func (e *explorer) build(st State, i int) State {
	p := e.cat.Producer(i)
	next := State{
		Time:  st.Time + 1,
		Stock: st.Stock.Sub(p.Cost).Add(st.Rate),
		Rate:  st.Rate.Add(p.Effect),
	}
	next.Stock = e.clamp(next.Stock, next.Rate)

	return next
}

// capped reports whether activating producer i cannot help: it does not
// raise the target and every kind it raises already earns at least the
// largest cost of that kind per tick.
func (e *explorer) capped(st State, i int) bool {
	p := e.cat.Producer(i)
	target := e.cat.Target()
	if p.Effect.At(target) > 0 {
		return false
	}
	ceiling := e.cat.MaxCost()
	var k int
	for k = range p.Effect {
		if p.Effect[k] > 0 && st.Rate[k] < ceiling[k] {
			return false
		}
	}

	return true
}

// clamp trims non-target stock that can no longer be spent faster than it
// is earned: once rate[k] reaches the cost ceiling of kind k, holding more
// than that ceiling changes nothing.
func (e *explorer) clamp(stock, rate resource.Vector) resource.Vector {
	ceiling := e.cat.MaxCost()
	target := e.cat.Target()
	var k resource.Kind
	for k = 0; k < resource.MaxKinds; k++ {
		if k != target && rate[k] >= ceiling[k] && stock[k] > ceiling[k] {
			stock[k] = ceiling[k]
		}
	}

	return stock
}

// expandValve offers a successor per unopened, allowed, reachable producer
// that can be opened before the horizon.
func (e *explorer) expandValve(st State) {
	(e.allowed &^ st.Opened).Each(func(j int) {
		lag, ok := e.cat.Lag(st.Location, j)
		if !ok {
			return
		}
		dt := lag + 1
		if st.Time+dt > e.horizon {
			return
		}
		next := State{
			Time:     st.Time + dt,
			Stock:    st.Stock.With(0, resource.SatAdd(st.Stock[0], resource.SatMul(st.Rate[0], int64(dt)))),
			Rate:     st.Rate.With(0, resource.SatAdd(st.Rate[0], e.cat.Producer(j).Value)),
			Opened:   st.Opened.With(j),
			Location: j,
		}
		e.offer(next)
	})
}
