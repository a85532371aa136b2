package linkedvec

import (
	"iter"

	"github.com/hupe1980/linkedvec/internal/arena"
)

// All returns an iterator over handles and elements, front to back.
//
// The element just yielded may be removed during iteration. Any other
// structural change ends in unspecified (but memory-safe) behaviour.
func (l *List[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for idx := l.head; idx != arena.Nil; {
			n := l.node(idx)
			next := n.Next
			if !yield(l.handle(idx), n.Value) {
				return
			}
			idx = next
		}
	}
}

// Backward returns an iterator over handles and elements, back to front.
// The same mutation rules as for All apply.
func (l *List[T]) Backward() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		if l.len == 0 {
			return
		}
		for idx := l.tail(); ; {
			n := l.node(idx)
			prev, first := n.Prev, idx == l.head
			if !yield(l.handle(idx), n.Value) || first {
				return
			}
			idx = prev
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Handles returns an iterator over the handles, front to back.
func (l *List[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := range l.All() {
			if !yield(h) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new slice in traversal order.
func (l *List[T]) ToSlice() []T {
	s := make([]T, 0, l.len)
	for v := range l.Values() {
		s = append(s, v)
	}
	return s
}

// Extend pushes every value produced by seq to the back of l.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushBack(v)
	}
}

// Collect builds a List from the values produced by seq.
func Collect[T any](seq iter.Seq[T], optFns ...Option) *List[T] {
	l := New[T](optFns...)
	l.Extend(seq)
	return l
}

// IndexFunc returns the handle of the first element satisfying pred.
func (l *List[T]) IndexFunc(pred func(T) bool) (Handle, bool) {
	for h, v := range l.All() {
		if pred(v) {
			return h, true
		}
	}
	return Handle{}, false
}

// Index returns the handle of the first element equal to v. O(n).
func Index[T comparable](l *List[T], v T) (Handle, bool) {
	return l.IndexFunc(func(e T) bool { return e == v })
}

// Contains reports whether v is an element of l. O(n).
func Contains[T comparable](l *List[T], v T) bool {
	_, ok := Index(l, v)
	return ok
}

// RemoveValue removes the first element equal to v. O(n).
func RemoveValue[T comparable](l *List[T], v T) bool {
	_, ok := l.RemoveFunc(func(e T) bool { return e == v })
	return ok
}

// Equal reports whether a and b hold equal elements in the same order.
// Slot layout and identity are ignored.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for v := range a.Values() {
		w, _ := next()
		if v != w {
			return false
		}
	}
	return true
}
