// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
)

// ReleasedKind is the single resource component of a valve catalog.
const ReleasedKind = "released"

// Location is one node of a valve graph. Tunnels are one-tick directed
// edges to other locations by name.
type Location struct {
	Name    string
	Value   int64
	Tunnels []string
}

// NewGraphCatalog builds a valve-style catalog.
//
// Producers are the locations with positive Value, numbered in declaration
// order. The start location becomes an extra idle node with index Len(),
// even when it is itself a producer. Lags between the kept nodes come from
// an all-pairs relaxation over the full location graph.
//
// Complexity: O(N³) for N locations.
func NewGraphCatalog(locations []Location, start string) (*Catalog, error) {
	byName := make(map[string]int, len(locations))
	for i, loc := range locations {
		if loc.Name == "" {
			return nil, fmt.Errorf("%w: location #%d", ErrEmptyName, i)
		}
		if _, dup := byName[loc.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.Name)
		}
		if loc.Value < 0 {
			return nil, fmt.Errorf("%w: %q value %d", ErrNegativeCost, loc.Name, loc.Value)
		}
		byName[loc.Name] = i
	}
	startIdx, ok := byName[start]
	if !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownLocation, start)
	}

	full := newLagTable(len(locations))
	for i, loc := range locations {
		for _, to := range loc.Tunnels {
			j, ok := byName[to]
			if !ok {
				return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownLocation, loc.Name, to)
			}
			full.link(i, j, 1)
		}
	}
	full.relax()

	c := &Catalog{
		style: StyleValve,
		kinds: []string{ReleasedKind},
		index: make(map[string]int),
	}
	nodes := make([]int, 0, len(locations)+1)
	for i, loc := range locations {
		if loc.Value == 0 {
			continue
		}
		if len(c.producers) == MaxProducers {
			return nil, fmt.Errorf("%w: more than %d valued locations", ErrTooManyProducers, MaxProducers)
		}
		if full.at(startIdx, i) == noLag {
			return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, loc.Name, start)
		}
		id := len(c.producers)
		c.producers = append(c.producers, Producer{ID: id, Name: loc.Name, Value: loc.Value})
		c.index[loc.Name] = id
		nodes = append(nodes, i)
	}
	nodes = append(nodes, startIdx)

	c.lags = newLagTable(len(nodes))
	for a, from := range nodes {
		for b, to := range nodes {
			c.lags.data[a*c.lags.n+b] = full.at(from, to)
		}
	}

	return c, nil
}
