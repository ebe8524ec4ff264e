package store

import "sync"

// Collection is a mutex-guarded, insertion-ordered map of records keyed by an
// auto-assigned identity. Identities are 1-based, strictly increasing and
// never reused. Records are stored and replaced by value, so a reader never
// observes a half-applied update.
type Collection[T any] struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]T
	order  []int64
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		nextID: 1,
		items:  make(map[int64]T),
	}
}

// Create assigns the next identity, builds the record with it and stores the
// result. The build callback runs under the write lock.
func (c *Collection[T]) Create(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	v := build(id)
	c.items[id] = v
	c.order = append(c.order, id)
	return v
}

// Get returns the record for id. Absence is a normal outcome, not an error.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	return v, ok
}

// List returns all records in insertion order. Callers that need a particular
// order must sort the result themselves.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Update applies mutate to the stored record and replaces it, all under the
// write lock, so concurrent read-modify-write sequences against the same
// record cannot lose updates. Returns false if the record does not exist.
func (c *Collection[T]) Update(id int64, mutate func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	v = mutate(v)
	c.items[id] = v
	return v, true
}

// Filter returns all records matching pred, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, id := range c.order {
		if v := c.items[id]; pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Find returns the first record matching pred in insertion order.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if v := c.items[id]; pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
