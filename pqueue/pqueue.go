// Package pqueue provides a binary min-heap over string items whose
// priority lives entirely outside the queue: ordering is delegated to the
// comparison function supplied at construction, and Update re-places one
// item after its external key changed (the decrease-key primitive Dijkstra,
// Prim and the source-first topological sort are built on).
//
// Ties between items the comparison function considers equal surface in an
// unspecified heap order; callers must not rely on any particular tie
// sequence. A Queue is owned by a single algorithm run and is not safe for
// concurrent use.
package pqueue

import (
	"container/heap"
	"errors"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates Dequeue or Peek on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateItem indicates Enqueue of an item already present.
	ErrDuplicateItem = errors.New("pqueue: item already enqueued")
)

// Queue is a keyed-update binary heap of string items.
type Queue struct {
	h *indexedHeap
}

// New returns an empty Queue ordered by less. The function must induce a
// consistent ordering for the lifetime of each enqueued item, except for
// changes announced through Update. A nil less panics.
func New(less func(a, b string) bool) *Queue {
	if less == nil {
		panic("pqueue: nil less function")
	}

	return &Queue{h: &indexedHeap{
		pos:  make(map[string]int),
		less: less,
	}}
}

// Enqueue inserts id. Returns ErrDuplicateItem if id is already present.
// Complexity: O(log n).
func (q *Queue) Enqueue(id string) error {
	if _, ok := q.h.pos[id]; ok {
		return ErrDuplicateItem
	}
	heap.Push(q.h, id)

	return nil
}

// Dequeue removes and returns the minimum item.
// Returns ErrEmptyQueue when empty.
// Complexity: O(log n).
func (q *Queue) Dequeue() (string, error) {
	if q.h.Len() == 0 {
		return "", ErrEmptyQueue
	}

	return heap.Pop(q.h).(string), nil
}

// Peek returns the minimum item without removing it.
// Returns ErrEmptyQueue when empty. O(1).
func (q *Queue) Peek() (string, error) {
	if q.h.Len() == 0 {
		return "", ErrEmptyQueue
	}

	return q.h.ids[0], nil
}

// Update restores heap order around id after its external priority changed.
// Updating an item that is not in the queue is a silent no-op: engines
// relax edges toward already-settled vertices without checking first.
// Complexity: O(log n).
func (q *Queue) Update(id string) {
	if i, ok := q.h.pos[id]; ok {
		heap.Fix(q.h, i)
	}
}

// Contains reports whether id is currently enqueued. O(1).
func (q *Queue) Contains(id string) bool {
	_, ok := q.h.pos[id]

	return ok
}

// Len returns the number of enqueued items. O(1).
func (q *Queue) Len() int { return q.h.Len() }

// indexedHeap is the container/heap backing store. pos tracks each item's
// slice index so Update can heap.Fix in O(log n).
type indexedHeap struct {
	ids  []string
	pos  map[string]int
	less func(a, b string) bool
}

func (h *indexedHeap) Len() int { return len(h.ids) }

func (h *indexedHeap) Less(i, j int) bool { return h.less(h.ids[i], h.ids[j]) }

func (h *indexedHeap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

func (h *indexedHeap) Push(x interface{}) {
	id := x.(string)
	h.pos[id] = len(h.ids)
	h.ids = append(h.ids, id)
}

func (h *indexedHeap) Pop() interface{} {
	last := len(h.ids) - 1
	id := h.ids[last]
	h.ids = h.ids[:last]
	delete(h.pos, id)

	return id
}
