// Package resource defines Vector, the fixed-arity integer tuple that the
// flow-increment search moves through its state space.
//
// What
//
//   - Vector is a value type ([MaxKinds]int64); copies are cheap and it is
//     usable as (part of) a map key.
//   - Componentwise Add / Sub / Clamp / Max and the CanAfford comparison.
//   - Saturating integer helpers (SatAdd, SatMul, Triangular) used by the
//     upper-bound estimator so that large horizons cannot wrap around.
//
// Contract
//
//	Sub is only legal after CanAfford returned true for the same operands.
//	Subtracting below zero is a programming error and panics; it is never
//	clamped silently.
//
// Usage
//
//	stock := resource.Vector{}
//	rate := resource.Unit(0)          // one unit of kind 0 per tick
//	stock = stock.Add(rate)           // accumulate one tick
//	if stock.CanAfford(cost) {
//	    stock = stock.Sub(cost)
//	}
package resource
