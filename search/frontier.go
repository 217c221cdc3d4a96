package search

import "container/heap"

// frontier is a bucket queue keyed by time. Only times that were actually
// pushed get a bucket, so memory follows the number of queued states and
// not the horizon. States leave in non-decreasing time order and FIFO
// within one tick.
type frontier struct {
	buckets map[int][]State
	times   timeHeap // occupied times not yet being drained

	cur     []State // bucket being drained
	curTime int
	pos     int // next index inside cur
	active  bool
	size    int
}

func newFrontier() *frontier {
	return &frontier{buckets: make(map[int][]State)}
}

// push appends st to the bucket of its time.
func (f *frontier) push(st State) {
	f.size++
	if f.active && st.Time == f.curTime {
		f.cur = append(f.cur, st)
		return
	}
	b, ok := f.buckets[st.Time]
	if !ok {
		heap.Push(&f.times, st.Time)
	}
	f.buckets[st.Time] = append(b, st)
}

// pop returns the earliest queued state, or false when empty.
func (f *frontier) pop() (State, bool) {
	for {
		if f.active && f.pos < len(f.cur) {
			st := f.cur[f.pos]
			f.pos++
			f.size--

			return st, true
		}
		if f.times.Len() == 0 {
			f.active, f.cur, f.pos = false, nil, 0
			return State{}, false
		}
		t := heap.Pop(&f.times).(int)
		f.cur, f.curTime, f.pos, f.active = f.buckets[t], t, 0, true
		delete(f.buckets, t)
	}
}

// len returns the number of queued states.
func (f *frontier) len() int { return f.size }

// timeHeap is a min-heap of tick numbers.
type timeHeap []int

func (h timeHeap) Len() int           { return len(h) }
func (h timeHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h timeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *timeHeap) Push(x any)        { *h = append(*h, x.(int)) }

func (h *timeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
