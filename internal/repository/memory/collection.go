// Package memory keeps entities in process-local collections.
//
// Each collection preserves insertion order, indexes records by id and is
// safe for concurrent use. Ids are assigned as the largest id currently held
// plus one, inside the write lock.
package memory

import (
	"slices"
	"sync"
)

// collection is an ordered, id-indexed set of records of type T.
type collection[T any] struct {
	mu    sync.RWMutex
	order []int64
	items map[int64]T
	maxID int64

	setID func(*T, int64)
}

func newCollection[T any](setID func(*T, int64)) *collection[T] {
	return &collection[T]{
		items: make(map[int64]T),
		setID: setID,
	}
}

// all returns a copy of every record in insertion order.
func (c *collection[T]) all() []T {
	return c.filter(func(T) bool { return true })
}

// filter returns the records matching keep, in insertion order. The result
// is never nil.
func (c *collection[T]) filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if item := c.items[id]; keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// insert assigns the next id to item, stores a copy and returns it.
func (c *collection[T]) insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxID++
	c.setID(&item, c.maxID)

	c.items[c.maxID] = item
	c.order = append(c.order, c.maxID)
	return item
}

// update applies mutate to the stored record. It reports false when id is
// absent.
func (c *collection[T]) update(id int64, mutate func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		return false
	}
	mutate(&item)
	c.setID(&item, id)
	c.items[id] = item
	return true
}

func (c *collection[T]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(v int64) bool { return v == id })

	if id == c.maxID {
		c.maxID = 0
		for _, v := range c.order {
			c.maxID = max(c.maxID, v)
		}
	}
	return true
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
