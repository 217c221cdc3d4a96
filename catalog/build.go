// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/flowsched/resource"
)

// ProducerSpec describes one build-style producer by kind name.
type ProducerSpec struct {
	Name   string
	Cost   map[string]int64
	Effect map[string]int64
}

// BuildSpec is the input to NewBuildCatalog.
//
// Kinds fixes the component order of every resource.Vector. Base is the
// starting rate; when empty it defaults to one unit of Kinds[0].
type BuildSpec struct {
	Kinds     []string
	Target    string
	Base      map[string]int64
	Producers []ProducerSpec
}

// NewBuildCatalog validates spec and derives the per-kind cost ceiling,
// the top-tier set and the largest target gain.
//
// Complexity: O(P·K) for P producers and K kinds.
func NewBuildCatalog(spec BuildSpec) (*Catalog, error) {
	if len(spec.Kinds) == 0 {
		return nil, ErrNoKinds
	}
	if len(spec.Kinds) > resource.MaxKinds {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyKinds, len(spec.Kinds), resource.MaxKinds)
	}
	if len(spec.Producers) > MaxProducers {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyProducers, len(spec.Producers), MaxProducers)
	}

	kindIdx := make(map[string]resource.Kind, len(spec.Kinds))
	for i, name := range spec.Kinds {
		if name == "" {
			return nil, fmt.Errorf("%w: kind #%d", ErrEmptyName, i)
		}
		if _, dup := kindIdx[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKind, name)
		}
		kindIdx[name] = resource.Kind(i)
	}

	target, ok := kindIdx[spec.Target]
	if !ok {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownKind, spec.Target)
	}

	c := &Catalog{
		style:     StyleBuild,
		kinds:     slices.Clone(spec.Kinds),
		target:    target,
		producers: make([]Producer, 0, len(spec.Producers)),
		index:     make(map[string]int, len(spec.Producers)),
	}

	var err error
	if len(spec.Base) == 0 {
		c.base = resource.Unit(0)
	} else if c.base, err = toVector(kindIdx, spec.Base, "base"); err != nil {
		return nil, err
	}

	for i, ps := range spec.Producers {
		if ps.Name == "" {
			return nil, fmt.Errorf("%w: producer #%d", ErrEmptyName, i)
		}
		if _, dup := c.index[ps.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProducer, ps.Name)
		}
		p := Producer{ID: i, Name: ps.Name}
		if p.Cost, err = toVector(kindIdx, ps.Cost, ps.Name+" cost"); err != nil {
			return nil, err
		}
		if p.Effect, err = toVector(kindIdx, ps.Effect, ps.Name+" effect"); err != nil {
			return nil, err
		}
		c.maxCost = c.maxCost.Max(p.Cost)
		if gain := p.Effect.At(target); gain > 0 {
			c.topTier = c.topTier.With(i)
			if gain > c.gain {
				c.gain = gain
			}
		}
		c.index[ps.Name] = i
		c.producers = append(c.producers, p)
	}
	c.maxCost = c.maxCost.With(target, 0)

	return c, nil
}

// toVector maps a name→amount table onto kind components. Keys are visited
// in sorted order so the reported error is deterministic.
func toVector(kindIdx map[string]resource.Kind, m map[string]int64, what string) (resource.Vector, error) {
	var v resource.Vector
	for _, name := range slices.Sorted(maps.Keys(m)) {
		k, ok := kindIdx[name]
		if !ok {
			return v, fmt.Errorf("%w: %s references %q", ErrUnknownKind, what, name)
		}
		if m[name] < 0 {
			return v, fmt.Errorf("%w: %s %s=%d", ErrNegativeCost, what, name, m[name])
		}
		v = v.With(k, m[name])
	}

	return v, nil
}
