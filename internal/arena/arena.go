package arena

import "slices"

// Nil is the reserved slot index that never holds a value. Index 0 of every
// arena is burned at construction so the zero value of an index means "none".
const Nil = 0

// DefaultCapacity is the number of slots reserved up front when the caller
// does not ask for a specific capacity.
const DefaultCapacity = 8

// Node is a single arena slot.
//
// A live node carries a value and is threaded into the owner's ring through
// Next/Prev. A vacant node has a zero Value, Prev == Nil, and its Next points
// to the following vacant slot of the recycle chain.
type Node[T any] struct {
	Value T
	Next  int
	Prev  int
	Gen   uint64 // bumped on every Reclaim
	Live  bool
}

// Stats tracks slot usage.
//
// Note on semantics:
//   - Slots: slots ever handed out (excludes the reserved Nil slot)
//   - Live/Free: current occupancy split of Slots
//   - Capacity: slots the backing array can hold before the next growth
//   - Allocs: cumulative allocations, Recycled of which came from the free chain
//   - Reclaims: cumulative reclamations
//   - Grows: number of times the backing array was reallocated
type Stats struct {
	Slots    int
	Live     int
	Free     int
	Capacity int
	Allocs   uint64
	Recycled uint64
	Reclaims uint64
	Grows    uint64
}

// Arena is a growable vector of nodes with a LIFO recycle chain.
//
// Arena is not safe for concurrent use.
type Arena[T any] struct {
	nodes    []Node[T]
	free     int // head of the recycle chain
	live     int
	vacant   int
	onGrow   func(oldCap, newCap int)
	allocs   uint64
	recycled uint64
	reclaims uint64
	grows    uint64
}

// Option is a configuration option for Arena.
type Option func(*options)

type options struct {
	onGrow func(oldCap, newCap int)
}

// WithGrowHook registers fn to be called after the backing array has been
// reallocated. fn receives the capacity before and after the growth.
func WithGrowHook(fn func(oldCap, newCap int)) Option {
	return func(o *options) {
		o.onGrow = fn
	}
}

// New creates an Arena that can hold capacity values before it has to grow.
func New[T any](capacity int, opts ...Option) *Arena[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &Arena[T]{
		nodes:  make([]Node[T], 1, capacity+1),
		onGrow: o.onGrow,
	}
	return a
}

// Alloc stores v in a slot and returns its index. Vacant slots are reused
// most-recently-reclaimed first; the backing array only grows once the
// recycle chain is empty.
func (a *Arena[T]) Alloc(v T) int {
	a.allocs++

	if a.free != Nil {
		idx := a.free
		n := &a.nodes[idx]
		a.free = n.Next
		n.Value = v
		n.Next = Nil
		n.Prev = Nil
		n.Live = true
		a.vacant--
		a.live++
		a.recycled++
		return idx
	}

	oldCap := cap(a.nodes)
	a.nodes = append(a.nodes, Node[T]{Value: v, Live: true})
	a.grew(oldCap)
	a.live++
	return len(a.nodes) - 1
}

// Grow ensures n more slots can be appended without reallocating.
func (a *Arena[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	oldCap := cap(a.nodes)
	a.nodes = slices.Grow(a.nodes, n)
	a.grew(oldCap)
}

func (a *Arena[T]) grew(oldCap int) {
	newCap := cap(a.nodes)
	if newCap == oldCap {
		return
	}
	a.grows++
	if a.onGrow != nil {
		a.onGrow(oldCap-1, newCap-1)
	}
}

// Reclaim takes the value out of slot idx, pushes the slot onto the recycle
// chain and bumps its generation. The slot must be live.
func (a *Arena[T]) Reclaim(idx int) T {
	n := &a.nodes[idx]
	v := n.Value

	var zero T
	n.Value = zero
	n.Live = false
	n.Prev = Nil
	n.Next = a.free
	n.Gen++
	a.free = idx

	a.live--
	a.vacant++
	a.reclaims++
	return v
}

// Node returns the slot at idx. The pointer is only valid until the next
// Alloc, which may move the backing array.
func (a *Arena[T]) Node(idx int) *Node[T] {
	return &a.nodes[idx]
}

// Contains reports whether idx addresses an allocated (live or vacant) slot.
func (a *Arena[T]) Contains(idx int) bool {
	return idx > Nil && idx < len(a.nodes)
}

// FreeHead returns the first slot of the recycle chain, or Nil.
func (a *Arena[T]) FreeHead() int {
	return a.free
}

// Slots returns the number of slots handed out so far, live or vacant.
func (a *Arena[T]) Slots() int {
	return len(a.nodes) - 1
}

// Live returns the number of slots currently holding a value.
func (a *Arena[T]) Live() int {
	return a.live
}

// Free returns the number of slots waiting on the recycle chain.
func (a *Arena[T]) Free() int {
	return a.vacant
}

// Cap returns the number of slots the backing array holds without growing.
func (a *Arena[T]) Cap() int {
	return cap(a.nodes) - 1
}

// Reset reclaims every live slot in index order. Slots are kept (and their
// generations bumped) so handles issued before the reset stay detectably
// stale.
func (a *Arena[T]) Reset() int {
	n := 0
	for i := len(a.nodes) - 1; i > Nil; i-- {
		if a.nodes[i].Live {
			a.Reclaim(i)
			n++
		}
	}
	return n
}

// Stats returns the current arena statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Slots:    a.Slots(),
		Live:     a.live,
		Free:     a.vacant,
		Capacity: a.Cap(),
		Allocs:   a.allocs,
		Recycled: a.recycled,
		Reclaims: a.reclaims,
		Grows:    a.grows,
	}
}
