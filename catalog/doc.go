// SPDX-License-Identifier: MIT

// Package catalog holds the static description of a flow-increment
// scheduling instance: the producers, what activating each costs and what
// it yields.
//
// Two activation styles are supported:
//
//   - StyleBuild: a producer is paid for with stock and raises the per-tick
//     rate of one or more resource kinds (NewBuildCatalog).
//   - StyleValve: producers are graph locations; reaching one costs its
//     shortest travel lag, opening it costs one more tick, and its Value is
//     released on every tick that remains (NewGraphCatalog).
//
// Derived constants are computed once at construction: the per-kind cost
// ceiling (MaxCost), the producers that raise the target kind (TopTier) and,
// for graphs, the all-pairs lag table between producers and the start.
//
// Every malformed input is rejected at construction with a sentinel error
// (ErrUnknownKind, ErrUnreachable, ErrNegativeCost, ...). A Catalog is
// immutable afterwards and may be shared between goroutines.
package catalog
