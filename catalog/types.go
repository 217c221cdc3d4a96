// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/flowsched/resource"
)

// Style selects how producers are activated and how value accrues.
type Style int

const (
	// StyleBuild producers are paid for with stock and raise a per-tick rate.
	StyleBuild Style = iota

	// StyleValve producers sit on a graph; reaching and opening one costs
	// lag+1 ticks and adds its value to the released flow for every tick left.
	StyleValve
)

// String returns "build" or "valve".
func (s Style) String() string {
	switch s {
	case StyleBuild:
		return "build"
	case StyleValve:
		return "valve"
	default:
		return "unknown"
	}
}

// Producer is an immutable catalog entry.
//
// Build style uses Cost and Effect; valve style uses Value and the
// catalog's lag table.
type Producer struct {
	ID     int
	Name   string
	Cost   resource.Vector
	Effect resource.Vector
	Value  int64
}

// Catalog is the static description of one problem instance.
// It is immutable after construction and safe for concurrent readers.
type Catalog struct {
	style     Style
	kinds     []string
	target    resource.Kind
	base      resource.Vector
	producers []Producer
	index     map[string]int

	// build style, derived
	maxCost resource.Vector
	topTier Set
	gain    int64

	// valve style: lag over nodes 0..n-1 (producers) and n (start)
	lags *lagTable
}

// Style returns the activation style.
func (c *Catalog) Style() Style { return c.style }

// Len returns the number of producers.
func (c *Catalog) Len() int { return len(c.producers) }

// Producer returns producer i. It panics if i is out of range.
func (c *Catalog) Producer(i int) Producer { return c.producers[i] }

// Producers returns a copy of the producer list.
func (c *Catalog) Producers() []Producer {
	out := make([]Producer, len(c.producers))
	copy(out, c.producers)

	return out
}

// Kinds returns the declared resource kind names in component order.
func (c *Catalog) Kinds() []string {
	out := make([]string, len(c.kinds))
	copy(out, c.kinds)

	return out
}

// Target returns the value-bearing kind.
func (c *Catalog) Target() resource.Kind { return c.target }

// Base returns the starting rate vector.
func (c *Catalog) Base() resource.Vector { return c.base }

// MaxCost returns, per kind, the largest single-activation cost across all
// producers. The target component is always zero: it is never capped.
func (c *Catalog) MaxCost() resource.Vector { return c.maxCost }

// TopTier returns the producers whose effect raises the target kind.
func (c *Catalog) TopTier() Set { return c.topTier }

// TargetGain returns the largest target-rate increase a single activation
// can provide. Zero for valve catalogs.
func (c *Catalog) TargetGain() int64 { return c.gain }

// All returns the set of every producer.
func (c *Catalog) All() Set { return Full(len(c.producers)) }

// Start returns the node index of the start location for valve catalogs
// (always Len()). It returns -1 for build catalogs.
func (c *Catalog) Start() int {
	if c.style != StyleValve {
		return -1
	}

	return len(c.producers)
}

// Lag returns the shortest travel lag in ticks between two nodes, where
// nodes 0..Len()-1 are producers and Start() is the start location.
// ok is false for build catalogs, out-of-range nodes and unreachable pairs.
func (c *Catalog) Lag(from, to int) (lag int, ok bool) {
	if c.lags == nil || from < 0 || to < 0 || from >= c.lags.n || to >= c.lags.n {
		return 0, false
	}
	lag = c.lags.at(from, to)
	if lag == noLag {
		return 0, false
	}

	return lag, true
}

// Index returns the id of the producer with the given name.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.index[name]

	return i, ok
}
