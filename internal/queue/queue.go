package queue

import (
	"sort"

	"github.com/dshills/filesearch-mcp/pkg/types"
)

// BoundedQueue is a fixed-capacity collection that retains only the best
// maxSize items seen so far, ordered best-first by the comparator. It is
// the structure that lets the searcher scan an unbounded number of
// candidate files while holding O(maxSize) results in memory.
//
// BoundedQueue is not safe for concurrent use; callers share one
// instance only behind their own mutex.
type BoundedQueue[T any] struct {
	maxSize int
	less    func(a, b T) bool // true when a ranks before (better than) b
	items   []T
}

// New creates a bounded queue with the given capacity and comparator.
func New[T any](maxSize int, less func(a, b T) bool) (*BoundedQueue[T], error) {
	if maxSize <= 0 {
		return nil, types.ErrInvalidCapacity
	}
	if less == nil {
		return nil, types.ErrNilComparator
	}
	return &BoundedQueue[T]{
		maxSize: maxSize,
		less:    less,
		items:   make([]T, 0, maxSize),
	}, nil
}

// Add inserts an item, keeping the collection sorted best-first and
// truncated to capacity. An item worse than every member of a full
// queue is dropped without changing membership.
func (q *BoundedQueue[T]) Add(item T) {
	idx := sort.Search(len(q.items), func(i int) bool {
		return q.less(item, q.items[i])
	})

	if idx >= q.maxSize {
		return
	}

	var zero T
	q.items = append(q.items, zero)
	copy(q.items[idx+1:], q.items[idx:])
	q.items[idx] = item

	if len(q.items) > q.maxSize {
		q.items = q.items[:q.maxSize]
	}
}

// Len returns the current number of items.
func (q *BoundedQueue[T]) Len() int {
	return len(q.items)
}

// IsFull reports whether the queue holds maxSize items.
func (q *BoundedQueue[T]) IsFull() bool {
	return len(q.items) == q.maxSize
}

// MinAcceptableScore returns the score a new candidate must meet or beat
// to be worth inserting. The boolean is false when the queue is empty
// (no floor at all). A non-full queue accepts anything, so the floor is
// zero; a full queue's floor is the score of its current worst item.
//
// Upstream producers use this to skip expensive per-candidate work for
// items that cannot possibly make the cut.
func (q *BoundedQueue[T]) MinAcceptableScore(scoreOf func(T) float64) (float64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	if !q.IsFull() {
		return 0, true
	}
	return scoreOf(q.items[len(q.items)-1]), true
}

// Items returns a snapshot copy of the queue contents, best first.
func (q *BoundedQueue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// Clear empties the queue without changing capacity or comparator.
func (q *BoundedQueue[T]) Clear() {
	q.items = q.items[:0]
}
