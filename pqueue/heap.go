package pqueue

import "container/heap"

// entry is one heap slot: a node index, its key (tentative arrival time),
// and the monotonically increasing sequence number it was pushed with.
// seq breaks ties between equal keys in insertion order (FIFO).
type entry struct {
	nodeIdx int
	key     float64
	seq     uint64
}

// innerHeap implements container/heap.Interface over a slice of entries,
// ordered by (key, seq) ascending.
type innerHeap []entry

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Queue is a min-heap of (nodeIdx, key) pairs keyed on key ascending, with
// lazy-deletion semantics: Push never removes a node's previous entry, so
// PopMin may return stale entries the caller must detect and discard (see
// the package doc comment).
type Queue struct {
	h       innerHeap
	nextSeq uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{h: make(innerHeap, 0)}
}

// Push inserts nodeIdx with the given key in O(log n). It does not check
// for or remove any existing entry for nodeIdx already in the queue.
func (q *Queue) Push(nodeIdx int, key float64) {
	heap.Push(&q.h, entry{nodeIdx: nodeIdx, key: key, seq: q.nextSeq})
	q.nextSeq++
}

// PopMin removes and returns the entry with the smallest key (ties broken
// by insertion order) in O(log n). ok is false iff the queue is empty.
func (q *Queue) PopMin() (nodeIdx int, key float64, ok bool) {
	if q.h.Len() == 0 {
		return 0, 0, false
	}

	e := heap.Pop(&q.h).(entry)

	return e.nodeIdx, e.key, true
}

// Len returns the number of entries currently in the queue, including any
// stale ones not yet popped.
func (q *Queue) Len() int {
	return q.h.Len()
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool {
	return q.h.Len() == 0
}
