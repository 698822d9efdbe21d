package path

import "container/heap"

// openItem is one entry in the A* open set: a flat tile index ordered by f,
// with seq breaking ties in insertion order (earlier push wins), matching
// spec §4.4's tie-break rule.
type openItem struct {
	index int
	f     float32
	seq   int
}

type openHeap []openItem

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x any)   { *h = append(*h, x.(openItem)) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// openSet wraps openHeap behind the container/heap interface and assigns
// monotonically increasing sequence numbers so push order is preserved as
// the heap-stability tie-break.
type openSet struct {
	h       openHeap
	nextSeq int
}

func newOpenSet() *openSet {
	os := &openSet{}
	heap.Init(&os.h)
	return os
}

func (os *openSet) push(index int, f float32) {
	heap.Push(&os.h, openItem{index: index, f: f, seq: os.nextSeq})
	os.nextSeq++
}

func (os *openSet) pop() (int, bool) {
	if os.h.Len() == 0 {
		return 0, false
	}
	item := heap.Pop(&os.h).(openItem)
	return item.index, true
}

func (os *openSet) empty() bool { return os.h.Len() == 0 }
