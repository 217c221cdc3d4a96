package search

import (
	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/resource"
)

// UpperBound returns an optimistic estimate of the best terminal value
// reachable from st within horizon, with every producer allowed.
//
// Build style: target stock + target rate·R + gain·R(R-1)/2, where R is the
// remaining ticks and gain the largest target increase of one activation;
// as if a top-tier producer were completed on every remaining tick.
//
// Valve style: released + rate·R + Σ value_j·max(0, R-lag(loc, j)-1) over
// unopened reachable producers; as if each were reached directly from the
// current location.
//
// All arithmetic saturates at math.MaxInt64.
func UpperBound(cat *catalog.Catalog, st State, horizon int) int64 {
	if cat.Style() == catalog.StyleValve {
		return valveBound(cat, st, horizon, cat.All())
	}

	return buildBound(cat, st, horizon, cat.TargetGain())
}

// buildBound is the build-style estimate with an explicit gain, so that a
// restricted exploration can use the gain of its allowed producers only.
func buildBound(cat *catalog.Catalog, st State, horizon int, gain int64) int64 {
	rem := int64(horizon - st.Time)
	b := Terminal(cat, st, horizon)

	return resource.SatAdd(b, resource.SatMul(gain, resource.Triangular(rem)))
}

// valveBound is the valve-style estimate over the producers in allowed.
func valveBound(cat *catalog.Catalog, st State, horizon int, allowed catalog.Set) int64 {
	rem := horizon - st.Time
	b := Terminal(cat, st, horizon)
	(allowed &^ st.Opened).Each(func(j int) {
		lag, ok := cat.Lag(st.Location, j)
		if !ok {
			return
		}
		if left := rem - lag - 1; left > 0 {
			b = resource.SatAdd(b, resource.SatMul(cat.Producer(j).Value, int64(left)))
		}
	})

	return b
}

// allowedGain returns the largest target increase among allowed producers.
func allowedGain(cat *catalog.Catalog, allowed catalog.Set) int64 {
	var gain int64
	(allowed & cat.TopTier()).Each(func(i int) {
		if g := cat.Producer(i).Effect.At(cat.Target()); g > gain {
			gain = g
		}
	})

	return gain
}
