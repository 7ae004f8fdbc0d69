package cache

import "sync"

type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// LRU is a fixed-capacity map that drops the least recently used entry when
// full. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*node[K, V]
	// head is the most recently used entry, tail the least.
	head, tail *node[K, V]
	onEvict    func(K, V)
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn, called without the lock held for every
// entry dropped to make room, removed with Remove, or cleared with Purge.
func WithEvictCallback[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// New creates an LRU holding at most capacity entries. It panics if capacity
// is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(n)
	return n.value, true
}

// Add stores value under key as the most recently used entry. It reports
// whether another entry was evicted to make room.
func (c *LRU[K, V]) Add(key K, value V) bool {
	c.mu.Lock()
	if n, ok := c.items[key]; ok {
		n.value = value
		c.moveToFront(n)
		c.mu.Unlock()
		return false
	}

	n := &node[K, V]{key: key, value: value}
	c.items[key] = n
	c.pushFront(n)

	var evicted *node[K, V]
	if len(c.items) > c.capacity {
		evicted = c.tail
		c.unlink(evicted)
		delete(c.items, evicted.key)
	}
	onEvict := c.onEvict
	c.mu.Unlock()

	if evicted == nil {
		return false
	}
	if onEvict != nil {
		onEvict(evicted.key, evicted.value)
	}
	return true
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	n, ok := c.items[key]
	if ok {
		c.unlink(n)
		delete(c.items, key)
	}
	onEvict := c.onEvict
	c.mu.Unlock()

	if ok && onEvict != nil {
		onEvict(n.key, n.value)
	}
	return ok
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for n := c.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Purge removes every entry.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	var dropped []*node[K, V]
	if c.onEvict != nil {
		for n := c.head; n != nil; n = n.next {
			dropped = append(dropped, n)
		}
	}
	c.items = make(map[K]*node[K, V], c.capacity)
	c.head, c.tail = nil, nil
	onEvict := c.onEvict
	c.mu.Unlock()

	for _, n := range dropped {
		onEvict(n.key, n.value)
	}
}

// Must be called with lock held.
func (c *LRU[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// Must be called with lock held.
func (c *LRU[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// Must be called with lock held.
func (c *LRU[K, V]) moveToFront(n *node[K, V]) {
	if c.head == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}
