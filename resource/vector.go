package resource

import (
	"fmt"
	"strings"
)

// MaxKinds is the arity of Vector. Catalogs declare how many leading
// components they actually use; the rest stay zero.
const MaxKinds = 8

// panicNegative is the stable panic prefix for contract violations in Sub.
const panicNegative = "resource: Sub would drive component negative"

// Kind indexes a component of a Vector.
type Kind int

// Valid reports whether k addresses a component of Vector.
func (k Kind) Valid() bool { return k >= 0 && k < MaxKinds }

// Vector is an ordered tuple of integer counters.
type Vector [MaxKinds]int64

// Unit returns the vector with a single 1 at component k.
// It panics if k is out of range.
func Unit(k Kind) Vector {
	var v Vector
	v[k] = 1

	return v
}

// At returns component k.
func (v Vector) At(k Kind) int64 { return v[k] }

// With returns a copy of v with component k set to x.
func (v Vector) With(k Kind, x int64) Vector {
	v[k] = x

	return v
}

// Add returns v + o componentwise.
func (v Vector) Add(o Vector) Vector {
	var i int
	for i = 0; i < MaxKinds; i++ {
		v[i] += o[i]
	}

	return v
}

// Sub returns v - o componentwise.
//
// Callers must check CanAfford first: a component going below zero means an
// unchecked cost was applied, and Sub panics instead of returning a clamped
// value. Components of v that are already negative (rates used as deltas)
// are not subject to the check as long as o does not lower them further.
func (v Vector) Sub(o Vector) Vector {
	var i int
	for i = 0; i < MaxKinds; i++ {
		if o[i] > 0 && v[i]-o[i] < 0 {
			panic(fmt.Sprintf("%s: kind %d has %d, cost %d", panicNegative, i, v[i], o[i]))
		}
		v[i] -= o[i]
	}

	return v
}

// CanAfford reports whether v >= cost on every component.
func (v Vector) CanAfford(cost Vector) bool {
	var i int
	for i = 0; i < MaxKinds; i++ {
		if v[i] < cost[i] {
			return false
		}
	}

	return true
}

// Clamp returns the componentwise minimum of v and max.
func (v Vector) Clamp(max Vector) Vector {
	var i int
	for i = 0; i < MaxKinds; i++ {
		if v[i] > max[i] {
			v[i] = max[i]
		}
	}

	return v
}

// Max returns the componentwise maximum of v and o.
func (v Vector) Max(o Vector) Vector {
	var i int
	for i = 0; i < MaxKinds; i++ {
		if o[i] > v[i] {
			v[i] = o[i]
		}
	}

	return v
}

// Scale returns v multiplied by n componentwise, saturating on overflow.
func (v Vector) Scale(n int64) Vector {
	var i int
	for i = 0; i < MaxKinds; i++ {
		v[i] = SatMul(v[i], n)
	}

	return v
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool { return v == Vector{} }

// Format renders the first n components as "name=value" pairs, skipping
// zeros. names may be shorter than n; missing names fall back to "#i".
func (v Vector) Format(names []string, n int) string {
	var (
		b     strings.Builder
		i     int
		first = true
	)
	if n > MaxKinds {
		n = MaxKinds
	}
	for i = 0; i < n; i++ {
		if v[i] == 0 {
			continue
		}
		if !first {
			b.WriteString(" ")
		}
		first = false
		if i < len(names) {
			fmt.Fprintf(&b, "%s=%d", names[i], v[i])
		} else {
			fmt.Fprintf(&b, "#%d=%d", i, v[i])
		}
	}
	if first {
		return "0"
	}

	return b.String()
}
