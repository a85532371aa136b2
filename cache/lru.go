package cache

import (
	"sync"
	"sync/atomic"

	"github.com/hupe1980/linkedvec"
	"github.com/hupe1980/linkedvec/resource"
)

// LRU is a least-recently-used cache. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int64
	size     int64
	items    map[K]linkedvec.Handle
	order    *linkedvec.List[entry[K, V]] // front is most recently used
	sizer    func(K, V) int64
	onEvict  func(K, V)
	rc       *resource.Controller

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type entry[K comparable, V any] struct {
	key   K
	value V
	size  int64
}

// Stats holds cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Len       int
	Size      int64
}

// Option configures an LRU.
type Option[K comparable, V any] func(*options[K, V])

type options[K comparable, V any] struct {
	sizer    func(K, V) int64
	onEvict  func(K, V)
	rc       *resource.Controller
	listOpts []linkedvec.Option
}

// WithSizer sets the cost of an entry. The default costs 1 per entry, making
// capacity an entry count.
func WithSizer[K comparable, V any](fn func(K, V) int64) Option[K, V] {
	return func(o *options[K, V]) {
		o.sizer = fn
	}
}

// WithEvictCallback registers fn to be called, under the cache lock, for
// every entry dropped to make room. Explicit removals do not trigger it.
func WithEvictCallback[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvict = fn
	}
}

// WithResource accounts entry sizes against rc. An entry that rc cannot
// admit is not cached.
func WithResource[K comparable, V any](rc *resource.Controller) Option[K, V] {
	return func(o *options[K, V]) {
		o.rc = rc
	}
}

// WithListOptions passes options to the underlying list, e.g. a logger.
func WithListOptions[K comparable, V any](opts ...linkedvec.Option) Option[K, V] {
	return func(o *options[K, V]) {
		o.listOpts = append(o.listOpts, opts...)
	}
}

// NewLRU creates an LRU holding at most capacity units.
func NewLRU[K comparable, V any](capacity int64, opts ...Option[K, V]) *LRU[K, V] {
	o := options[K, V]{
		sizer: func(K, V) int64 { return 1 },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]linkedvec.Handle),
		order:    linkedvec.New[entry[K, V]](o.listOpts...),
		sizer:    o.sizer,
		onEvict:  o.onEvict,
		rc:       o.rc,
	}
}

// Get returns the value cached for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.items[key]; ok {
		c.hits.Add(1)
		_ = c.order.MoveToFront(h)
		e, _ := c.order.Get(h)
		return e.value, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Peek returns the value cached for key without touching its recency or the
// hit counters.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.items[key]; ok {
		e, _ := c.order.Get(h)
		return e.value, true
	}
	var zero V
	return zero, false
}

// Set caches value under key and reports whether it is cached afterwards.
// An entry larger than the capacity, or one the resource controller
// refuses, is not cached; a refused update keeps the old value.
func (c *LRU[K, V]) Set(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	newSize := c.sizer(key, value)

	if h, ok := c.items[key]; ok {
		_ = c.order.MoveToFront(h)
		old, _ := c.order.Get(h)
		if newSize > old.size && !c.rc.TryAcquireMemory(newSize-old.size) {
			return true
		}
		if newSize < old.size {
			c.rc.ReleaseMemory(old.size - newSize)
		}
		c.size += newSize - old.size
		c.order.Update(h, func(e *entry[K, V]) {
			e.value = value
			e.size = newSize
		})
		c.evict(0)
		_, ok := c.items[key]
		return ok
	}

	if newSize > c.capacity {
		return false
	}

	// Evict locally first so released memory is available to rc below.
	c.evict(newSize)

	if !c.rc.TryAcquireMemory(newSize) {
		return false
	}

	c.items[key] = c.order.PushFront(entry[K, V]{key: key, value: value, size: newSize})
	c.size += newSize
	return true
}

// Remove drops key from the cache and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.items[key]
	if !ok {
		return false
	}
	e, err := c.order.Remove(h)
	if err != nil {
		return false
	}
	c.drop(e)
	return true
}

// Invalidate removes every entry whose key satisfies pred and returns how
// many were removed.
func (c *LRU[K, V]) Invalidate(pred func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for h, e := range c.order.All() {
		if !pred(e.key) {
			continue
		}
		if _, err := c.order.Remove(h); err == nil {
			c.drop(e)
			n++
		}
	}
	return n
}

// Purge removes every entry.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rc.ReleaseMemory(c.size)
	c.order.Clear()
	clear(c.items)
	c.size = 0
}

// Keys returns the cached keys, most recently used first.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for e := range c.order.Values() {
		keys = append(keys, e.key)
	}
	return keys
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Size returns the summed size of the cached entries.
func (c *LRU[K, V]) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Stats returns the cache counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Len:       c.order.Len(),
		Size:      c.size,
	}
}

// evict pops least recently used entries until reserve more units fit.
func (c *LRU[K, V]) evict(reserve int64) {
	for c.size+reserve > c.capacity {
		e, ok := c.order.PopBack()
		if !ok {
			return
		}
		c.drop(e)
		c.evictions.Add(1)
		if c.onEvict != nil {
			c.onEvict(e.key, e.value)
		}
	}
}

func (c *LRU[K, V]) drop(e entry[K, V]) {
	delete(c.items, e.key)
	c.size -= e.size
	c.rc.ReleaseMemory(e.size)
}
