// SPDX-License-Identifier: MIT
// Package catalog: all-pairs shortest lag over the location graph.
//
// Purpose:
//   - Dense APSP relaxation with a deterministic loop order (k → i → j).
//   - Passes are repeated until no entry changes; with the k-outermost order
//     the fixpoint is reached after the first pass and the second pass only
//     confirms it, but the loop does not rely on that.
//
// Contract:
//   - noLag marks "no path"; the diagonal is 0; direct tunnels cost 1 tick.

package catalog

// noLag marks a missing path in the lag table.
const noLag = -1

// lagTable is a row-major n×n buffer of tick lags.
type lagTable struct {
	n    int
	data []int
}

// newLagTable returns an n×n table with 0 on the diagonal and noLag elsewhere.
func newLagTable(n int) *lagTable {
	t := &lagTable{n: n, data: make([]int, n*n)}
	var i int
	for i = range t.data {
		t.data[i] = noLag
	}
	for i = 0; i < n; i++ {
		t.data[i*n+i] = 0
	}

	return t
}

// at returns the lag i→j (noLag if unreachable).
func (t *lagTable) at(i, j int) int { return t.data[i*t.n+j] }

// link records a direct tunnel i→j, keeping the shorter lag if one exists.
func (t *lagTable) link(i, j, lag int) {
	cur := t.data[i*t.n+j]
	if cur == noLag || lag < cur {
		t.data[i*t.n+j] = lag
	}
}

// relax runs triangle-inequality passes until a full pass changes nothing
// and returns the number of passes performed.
//
// Complexity: O(passes · n³) time, O(1) extra space.
func (t *lagTable) relax() int {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, ij   int
		cand         int
		changed      bool
		passes       int
	)
	n := t.n
	data := t.data
	for {
		passes++
		changed = false
		for k = 0; k < n; k++ {
			baseK = k * n
			for i = 0; i < n; i++ {
				ik = data[i*n+k]
				if ik == noLag {
					continue // i cannot reach k
				}
				baseI = i * n
				for j = 0; j < n; j++ {
					kj = data[baseK+j]
					if kj == noLag {
						continue
					}
					ij = data[baseI+j]
					cand = ik + kj
					if ij == noLag || cand < ij {
						data[baseI+j] = cand
						changed = true
					}
				}
			}
		}
		if !changed {
			return passes
		}
	}
}
