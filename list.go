package linkedvec

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hupe1980/linkedvec/internal/arena"
)

// List is a doubly linked list whose nodes live in a single growable slice.
//
// Every insertion returns a Handle that addresses the new element in O(1)
// until the element is removed. Removed slots are recycled by later
// insertions; DebugChecks builds detect use of such stale handles.
//
// Create lists with New. A List is not safe for concurrent use; one writer
// at a time, with readers synchronized externally.
type List[T any] struct {
	arena  *arena.Arena[T]
	head   int
	len    int
	id     uuid.UUID
	logger *Logger
}

// New creates an empty List.
func New[T any](optFns ...Option) *List[T] {
	o := applyOptions(optFns)
	l := &List[T]{
		id:     uuid.New(),
		logger: o.logger,
	}
	l.arena = arena.New[T](o.capacity, arena.WithGrowHook(l.logger.LogGrow))
	return l
}

// FromSlice creates a List holding values in order.
func FromSlice[T any](values []T, optFns ...Option) *List[T] {
	l := New[T](append([]Option{WithCapacity(len(values))}, optFns...)...)
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Cap returns the number of slots the backing slice holds, occupied or
// recyclable, before it has to grow.
func (l *List[T]) Cap() int {
	return l.arena.Cap()
}

// Grow makes room for at least n more elements without reallocation.
func (l *List[T]) Grow(n int) {
	if need := n - l.arena.Free(); need > 0 {
		l.arena.Grow(need)
	}
}

func (l *List[T]) handle(idx int) Handle {
	return newHandle(idx, l.arena.Node(idx).Gen, l.id)
}

func (l *List[T]) node(idx int) *arena.Node[T] {
	return l.arena.Node(idx)
}

func (l *List[T]) tail() int {
	return l.node(l.head).Prev
}

// Check reports why h cannot be used with l, or nil if it is valid. The
// returned error is a *HandleError.
func (l *List[T]) Check(h Handle) error {
	return l.validate(h)
}

// Valid reports whether h addresses a live element of l.
func (l *List[T]) Valid(h Handle) bool {
	return l.validate(h) == nil
}

// Get returns the element addressed by h. ok is false if h is not valid.
func (l *List[T]) Get(h Handle) (v T, ok bool) {
	if l.validate(h) != nil {
		return v, false
	}
	return l.node(h.index).Value, true
}

// Set replaces the element addressed by h. It returns false and leaves the
// list untouched if h is not valid.
func (l *List[T]) Set(h Handle, v T) bool {
	if l.validate(h) != nil {
		return false
	}
	l.node(h.index).Value = v
	return true
}

// Update calls fn with a pointer to a copy of the element addressed by h and
// stores the copy back when fn returns. fn may modify the list; if that
// removes h's element, the result is discarded and Update returns false.
// It returns false without calling fn if h is not valid.
func (l *List[T]) Update(h Handle, fn func(*T)) bool {
	if l.validate(h) != nil {
		return false
	}
	v := l.node(h.index).Value
	fn(&v)
	if l.validate(h) != nil {
		return false
	}
	l.node(h.index).Value = v
	return true
}

// GetUnchecked returns the element addressed by h without the checks Get
// performs in release builds. With DebugChecks it panics with a
// *HandleError on an invalid handle.
func (l *List[T]) GetUnchecked(h Handle) T {
	l.assert(h)
	return l.node(h.index).Value
}

// SetUnchecked is the unchecked counterpart of Set.
func (l *List[T]) SetUnchecked(h Handle, v T) {
	l.assert(h)
	l.node(h.index).Value = v
}

// FrontNode returns the handle of the first element.
func (l *List[T]) FrontNode() (Handle, bool) {
	if l.len == 0 {
		return Handle{}, false
	}
	return l.handle(l.head), true
}

// BackNode returns the handle of the last element.
func (l *List[T]) BackNode() (Handle, bool) {
	if l.len == 0 {
		return Handle{}, false
	}
	return l.handle(l.tail()), true
}

// Front returns the first element.
func (l *List[T]) Front() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.node(l.head).Value, true
}

// Back returns the last element.
func (l *List[T]) Back() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.node(l.tail()).Value, true
}

// NextNode returns the handle following h. ok is false if h is the last
// element or not valid.
func (l *List[T]) NextNode(h Handle) (Handle, bool) {
	if l.validate(h) != nil {
		return Handle{}, false
	}
	next := l.node(h.index).Next
	if next == arena.Nil {
		return Handle{}, false
	}
	return l.handle(next), true
}

// PrevNode returns the handle preceding h. ok is false if h is the first
// element or not valid.
func (l *List[T]) PrevNode(h Handle) (Handle, bool) {
	if l.validate(h) != nil || h.index == l.head {
		return Handle{}, false
	}
	return l.handle(l.node(h.index).Prev), true
}

// NextValue returns the element following h.
func (l *List[T]) NextValue(h Handle) (v T, ok bool) {
	next, ok := l.NextNode(h)
	if !ok {
		return v, false
	}
	return l.node(next.index).Value, true
}

// PrevValue returns the element preceding h.
func (l *List[T]) PrevValue(h Handle) (v T, ok bool) {
	prev, ok := l.PrevNode(h)
	if !ok {
		return v, false
	}
	return l.node(prev.index).Value, true
}

// HandleAt returns the handle of the i-th element, walking from whichever
// end is closer. O(min(i, Len-i)).
func (l *List[T]) HandleAt(i int) (Handle, bool) {
	if i < 0 || i >= l.len {
		return Handle{}, false
	}
	var idx int
	if i <= l.len/2 {
		idx = l.head
		for range i {
			idx = l.node(idx).Next
		}
	} else {
		idx = l.tail()
		for range l.len - 1 - i {
			idx = l.node(idx).Prev
		}
	}
	return l.handle(idx), true
}

// PushBack appends v and returns its handle. O(1) amortized.
func (l *List[T]) PushBack(v T) Handle {
	return l.insert(arena.Nil, v)
}

// PushFront prepends v and returns its handle. O(1) amortized.
func (l *List[T]) PushFront(v T) Handle {
	return l.insert(l.head, v)
}

// InsertBefore inserts v immediately before anchor and returns its handle.
// The nil anchor inserts at the back. On an empty list only the nil anchor
// is accepted; any other anchor yields ErrEmpty.
func (l *List[T]) InsertBefore(anchor Handle, v T) (Handle, error) {
	if anchor.IsNil() {
		return l.PushBack(v), nil
	}
	if l.len == 0 {
		return Handle{}, fmt.Errorf("%w: cannot insert before %v", ErrEmpty, anchor)
	}
	if err := l.validate(anchor); err != nil {
		return Handle{}, err
	}
	return l.insert(anchor.index, v), nil
}

// InsertAfter inserts v immediately after anchor and returns its handle.
// The nil anchor inserts at the back.
func (l *List[T]) InsertAfter(anchor Handle, v T) (Handle, error) {
	if anchor.IsNil() {
		return l.PushBack(v), nil
	}
	if l.len == 0 {
		return Handle{}, fmt.Errorf("%w: cannot insert after %v", ErrEmpty, anchor)
	}
	if err := l.validate(anchor); err != nil {
		return Handle{}, err
	}
	return l.insert(l.node(anchor.index).Next, v), nil
}

func (l *List[T]) insert(anchor int, v T) Handle {
	idx := l.arena.Alloc(v)
	l.linkBefore(idx, anchor)
	l.len++
	return l.handle(idx)
}

// Remove unlinks the element addressed by h and returns it. h and every
// copy of it become invalid.
func (l *List[T]) Remove(h Handle) (v T, err error) {
	if err = l.validate(h); err != nil {
		return v, err
	}
	return l.remove(h.index), nil
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.remove(l.head), true
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.remove(l.tail()), true
}

// RemoveFunc removes the first element for which pred returns true.
// O(n).
func (l *List[T]) RemoveFunc(pred func(T) bool) (v T, ok bool) {
	h, ok := l.IndexFunc(pred)
	if !ok {
		return v, false
	}
	return l.remove(h.index), true
}

func (l *List[T]) remove(idx int) T {
	l.unlink(idx)
	l.len--
	return l.arena.Reclaim(idx)
}

// Clear removes every element. Slots are kept for reuse, and all handles
// issued so far become invalid.
func (l *List[T]) Clear() {
	removed := l.arena.Reset()
	l.head = arena.Nil
	l.len = 0
	l.logger.LogClear(removed)
}

// Append moves every element of other to the back of l, in order, leaving
// other empty. Handles into other are invalidated; the moved elements get
// new handles in l. O(len(other)). Appending a list to itself is a no-op.
func (l *List[T]) Append(other *List[T]) {
	if other == nil || other == l {
		return
	}
	moved := other.len
	l.Grow(moved)
	for other.len > 0 {
		v, _ := other.PopFront()
		l.PushBack(v)
	}
	l.logger.LogAppend(moved, l.len)
}

// Clone returns a copy of l with its elements laid out contiguously in
// traversal order. The copy has its own identity: handles of l are not
// valid against it.
func (l *List[T]) Clone() *List[T] {
	c := New[T](WithCapacity(l.len), WithLogger(l.logger))
	for v := range l.Values() {
		c.PushBack(v)
	}
	return c
}

// String renders the elements in traversal order, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}
