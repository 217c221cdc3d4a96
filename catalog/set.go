// SPDX-License-Identifier: MIT

package catalog

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxProducers is the width of Set. Catalogs with more producers are
// rejected at construction time with ErrTooManyProducers.
const MaxProducers = 64

// Set is a fixed-width bitset of producer ids (bit i = producer i).
type Set uint64

// Full returns the set {0, …, n-1}. n must be in [0, MaxProducers].
func Full(n int) Set {
	if n >= MaxProducers {
		return ^Set(0)
	}

	return Set(1)<<uint(n) - 1
}

// Has reports whether producer i is in s.
func (s Set) Has(i int) bool { return s&(1<<uint(i)) != 0 }

// With returns s ∪ {i}.
func (s Set) With(i int) Set { return s | 1<<uint(i) }

// Without returns s \ {i}.
func (s Set) Without(i int) Set { return s &^ (1 << uint(i)) }

// Len returns |s|.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Each calls fn for every member of s in ascending order.
func (s Set) Each(fn func(i int)) {
	for s != 0 {
		i := bits.TrailingZeros64(uint64(s))
		fn(i)
		s &= s - 1
	}
}

// Members returns the members of s in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	s.Each(func(i int) { out = append(out, i) })

	return out
}

// String renders s as "{0,3,5}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Each(func(i int) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.Itoa(i))
	})
	b.WriteByte('}')

	return b.String()
}
