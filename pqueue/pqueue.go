package pqueue

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Queue.
var (
	// ErrDuplicateKey indicates Add was called with a key already in the queue.
	ErrDuplicateKey = errors.New("pqueue: duplicate key")

	// ErrKeyNotFound indicates a lookup for a key that is not in the queue.
	ErrKeyNotFound = errors.New("pqueue: key not found")

	// ErrBadPriority indicates a NaN priority.
	ErrBadPriority = errors.New("pqueue: priority is NaN")
)

// Item is a queued value together with its current priority.
type Item[T any] struct {
	Value    T
	Priority float64
}

// Queue is an indexed min-priority queue over values of type T keyed by K.
type Queue[K comparable, T any] struct {
	keyFn func(T) K
	items []T       // heap storage
	index map[K]int // key → position in items
	prio  []float64 // position → priority
}

// New returns an empty queue. keyFn must return a key unique among all items
// queued at the same time. Panics if keyFn is nil.
func New[K comparable, T any](keyFn func(T) K) *Queue[K, T] {
	if keyFn == nil {
		panic("pqueue: nil key function")
	}
	return &Queue[K, T]{
		keyFn: keyFn,
		index: make(map[K]int),
	}
}

// Len returns the number of queued items.
func (q *Queue[K, T]) Len() int { return len(q.items) }

// Has reports whether an item with key is queued.
func (q *Queue[K, T]) Has(key K) bool {
	_, ok := q.index[key]
	return ok
}

// Priority returns the current priority of key.
func (q *Queue[K, T]) Priority(key K) (float64, error) {
	i, ok := q.index[key]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return q.prio[i], nil
}

// Add inserts item with the given priority.
// Returns ErrDuplicateKey if the item's key is already queued.
func (q *Queue[K, T]) Add(item T, priority float64) error {
	if math.IsNaN(priority) {
		return ErrBadPriority
	}
	key := q.keyFn(item)
	if _, ok := q.index[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	i := len(q.items)
	q.items = append(q.items, item)
	q.prio = append(q.prio, priority)
	q.index[key] = i
	q.up(i)

	return nil
}

// Peek returns the minimum-priority item without removing it.
// ok is false when the queue is empty.
func (q *Queue[K, T]) Peek() (item Item[T], ok bool) {
	if len(q.items) == 0 {
		return Item[T]{}, false
	}
	return Item[T]{Value: q.items[0], Priority: q.prio[0]}, true
}

// Pull removes and returns the minimum-priority item.
// ok is false when the queue is empty.
func (q *Queue[K, T]) Pull() (item Item[T], ok bool) {
	n := len(q.items) - 1
	if n < 0 {
		return Item[T]{}, false
	}

	q.swap(0, n)
	item = Item[T]{Value: q.items[n], Priority: q.prio[n]}
	delete(q.index, q.keyFn(item.Value))

	var zero T
	q.items[n] = zero
	q.items = q.items[:n]
	q.prio = q.prio[:n]
	q.down(0)

	return item, true
}

// SetPriority changes the priority of the item queued under key, restoring
// heap order in place. Returns ErrKeyNotFound if key is not queued.
func (q *Queue[K, T]) SetPriority(key K, priority float64) error {
	if math.IsNaN(priority) {
		return ErrBadPriority
	}
	i, ok := q.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	old := q.prio[i]
	q.prio[i] = priority
	switch {
	case priority < old:
		q.up(i)
	case priority > old:
		q.down(i)
	}

	return nil
}

// swap exchanges positions i and j in all three structures at once.
func (q *Queue[K, T]) swap(i, j int) {
	if i == j {
		return
	}
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.prio[i], q.prio[j] = q.prio[j], q.prio[i]
	q.index[q.keyFn(q.items[i])] = i
	q.index[q.keyFn(q.items[j])] = j
}

func (q *Queue[K, T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.prio[parent] <= q.prio[i] {
			return
		}
		q.swap(parent, i)
		i = parent
	}
}

func (q *Queue[K, T]) down(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && q.prio[right] < q.prio[left] {
			child = right
		}
		if q.prio[i] <= q.prio[child] {
			return
		}
		q.swap(i, child)
		i = child
	}
}
