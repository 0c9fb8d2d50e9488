package pqueue_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimmseo/cvqkd-routing/pqueue"
)

func TestQueue_PopsInNonDecreasingOrder(t *testing.T) {
	q := pqueue.New()
	q.Push(1, 5.0)
	q.Push(2, 1.0)
	q.Push(3, 3.0)

	var got []int
	for !q.IsEmpty() {
		idx, _, ok := q.PopMin()
		require.True(t, ok)
		got = append(got, idx)
	}

	assert.Equal(t, []int{2, 3, 1}, got)
}

func TestQueue_FIFOTieBreak(t *testing.T) {
	// ties in arrival time are broken by insertion order.
	q := pqueue.New()
	q.Push(10, 2.0)
	q.Push(11, 2.0)
	q.Push(12, 2.0)

	idx1, _, _ := q.PopMin()
	idx2, _, _ := q.PopMin()
	idx3, _, _ := q.PopMin()

	assert.Equal(t, []int{10, 11, 12}, []int{idx1, idx2, idx3})
}

func TestQueue_LazyDeletionAllowsStaleEntries(t *testing.T) {
	q := pqueue.New()
	q.Push(1, 10.0)
	q.Push(1, 2.0) // a cheaper relaxation supersedes the first push

	assert.Equal(t, 2, q.Len(), "push does not remove the prior entry for the same node")

	idx, key, ok := q.PopMin()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2.0, key, "the cheaper, more recent key pops first")

	// The stale entry (key=10.0) is still in the queue; a solver is
	// expected to detect and discard it by comparing against its own
	// current tentative value.
	_, staleKey, ok := q.PopMin()
	require.True(t, ok)
	assert.Equal(t, 10.0, staleKey)
	assert.True(t, q.IsEmpty())
}

func TestQueue_EmptyPopReportsNotOK(t *testing.T) {
	q := pqueue.New()
	_, _, ok := q.PopMin()
	assert.False(t, ok)
}

func TestQueue_HandlesInfiniteKeys(t *testing.T) {
	q := pqueue.New()
	q.Push(1, math.Inf(1))
	q.Push(2, 0.0)

	idx, key, _ := q.PopMin()
	assert.Equal(t, 2, idx)
	assert.Equal(t, 0.0, key)

	idx, key, _ = q.PopMin()
	assert.Equal(t, 1, idx)
	assert.True(t, math.IsInf(key, 1))
}
