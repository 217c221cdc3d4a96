// Package search implements the deadline-bounded flow-accumulation optimizer:
// a breadth-first branch-and-bound over "what is active, what do I hold,
// how much time is left".
//
// The explorer pops states in non-decreasing time order from a bucket queue,
// records each state's closed-form terminal value (target stock plus target
// rate for every remaining tick) and expands it:
//
//   - Build style: activate any affordable producer not in the state's skip
//     mask, except producers whose raised kinds already earn their cost
//     ceiling per tick. Optionally (TopTierFirst, default on) a state that can
//     afford a target producer explores only that. A wait successor carries
//     the candidate set forward as its skip mask, so a deferred activation is
//     never re-derived one tick later.
//   - Valve style: travel to and open each unopened reachable producer,
//     spending lag+1 ticks.
//
// Successors are pruned when UpperBound cannot beat the best terminal value
// so far, and deduplicated on (stock, rate, location, opened) keeping the
// earliest arrival.
//
// Complexity:
//
//	Time:   O(S·P), S reachable states after pruning, P producers.
//	Memory: O(S) for the frontier and visited map.
//
// A single Search is single-threaded; Catalogs are read-only and may be
// shared by concurrent searches (see package partition).
package search
