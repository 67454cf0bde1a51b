package pqueue_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plexus-graph/plexus/pqueue"
)

func byKey(key map[string]int) func(a, b string) bool {
	return func(a, b string) bool { return key[a] < key[b] }
}

func TestQueue_OrdersByExternalKey(t *testing.T) {
	key := map[string]int{"a": 3, "b": 1, "c": 2}
	q := pqueue.New(byKey(key))
	for id := range key {
		require.NoError(t, q.Enqueue(id))
	}
	require.Equal(t, 3, q.Len())

	var got []string
	for q.Len() > 0 {
		id, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, id)
	}
	require.Equal(t, []string{"b", "c", "a"}, got)
}

func TestQueue_DuplicateEnqueue(t *testing.T) {
	q := pqueue.New(func(a, b string) bool { return a < b })
	require.NoError(t, q.Enqueue("x"))
	require.ErrorIs(t, q.Enqueue("x"), pqueue.ErrDuplicateItem)
	require.Equal(t, 1, q.Len())
}

func TestQueue_EmptyDequeuePeek(t *testing.T) {
	q := pqueue.New(func(a, b string) bool { return a < b })
	_, err := q.Dequeue()
	require.ErrorIs(t, err, pqueue.ErrEmptyQueue)
	_, err = q.Peek()
	require.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

func TestQueue_PeekDoesNotRemove(t *testing.T) {
	q := pqueue.New(func(a, b string) bool { return a < b })
	require.NoError(t, q.Enqueue("m"))
	top, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "m", top)
	require.Equal(t, 1, q.Len())
	require.True(t, q.Contains("m"))
}

func TestQueue_UpdateReordersAfterKeyChange(t *testing.T) {
	key := map[string]int{"far": 10, "mid": 5, "near": 1}
	q := pqueue.New(byKey(key))
	for id := range key {
		require.NoError(t, q.Enqueue(id))
	}

	// decrease-key: "far" becomes the closest
	key["far"] = 0
	q.Update("far")

	id, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "far", id)

	// increase-key works the same way
	key["near"] = 100
	q.Update("near")
	id, err = q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "mid", id)
}

func TestQueue_UpdateAbsentIsNoop(t *testing.T) {
	key := map[string]int{"a": 1, "b": 2}
	q := pqueue.New(byKey(key))
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))

	id, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "a", id)

	// "a" left the queue; a late key change must not disturb anything
	key["a"] = 99
	q.Update("a")
	require.False(t, q.Contains("a"))
	require.Equal(t, 1, q.Len())

	id, err = q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "b", id)
}

func TestQueue_DequeueAllThenReuse(t *testing.T) {
	key := map[string]int{"a": 1}
	q := pqueue.New(byKey(key))
	require.NoError(t, q.Enqueue("a"))
	_, err := q.Dequeue()
	require.NoError(t, err)

	// re-enqueue after dequeue is legal
	require.NoError(t, q.Enqueue("a"))
	top, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "a", top)
}

func TestNew_NilLessPanics(t *testing.T) {
	require.Panics(t, func() { pqueue.New(nil) })
}

// TestQueue_RandomChurn interleaves key changes with dequeues and checks
// the heap invariant at every step: the dequeued element's key is no
// larger than the key of anything still enqueued.
func TestQueue_RandomChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	key := make(map[string]int, 64)
	live := make(map[string]bool, 64)

	q := pqueue.New(byKey(key))
	for i := 0; i < 64; i++ {
		id := strconv.Itoa(i)
		key[id] = rng.Intn(1000)
		live[id] = true
		require.NoError(t, q.Enqueue(id))
	}

	for q.Len() > 0 {
		// mutate a few keys, enqueued or not, then re-fix their slots
		for i := 0; i < 3; i++ {
			id := strconv.Itoa(rng.Intn(64))
			key[id] = rng.Intn(1000)
			q.Update(id)
		}

		id, err := q.Dequeue()
		require.NoError(t, err)
		delete(live, id)
		for other := range live {
			require.LessOrEqual(t, key[id], key[other],
				"dequeued %s (key %d) after %s (key %d)", id, key[id], other, key[other])
		}
	}
}
